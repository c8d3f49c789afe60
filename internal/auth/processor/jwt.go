package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campaign-server/internal/observability"
	"campaign-server/internal/tenancy"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token expired")
	ErrMissingTenant   = errors.New("token has no tenant")
	ErrUnknownRole     = errors.New("token has an unknown role")
)

const issuer = "campaign-server"

// Claims are the claims of an access token. Tokens are issued by the account
// service and carry the caller's tenant and role.
type Claims struct {
	jwt.RegisteredClaims
	TenantID string `json:"tenantId,omitempty"`
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
}

type AuthProcessor struct {
	jwtSecret []byte
	logger    *observability.Logger
	now       func() time.Time
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
		now:       time.Now,
	}
}

// GenerateJWTToken signs a token for scope, valid for ttl
func (p *AuthProcessor) GenerateJWTToken(ctx context.Context, scope tenancy.Scope, ttl time.Duration) (string, error) {
	now := p.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: scope.Role,
		Name: scope.UserName,
	}
	if scope.UserID != nil {
		claims.Subject = scope.UserID.String()
	}
	if scope.TenantID != uuid.Nil {
		claims.TenantID = scope.TenantID.String()
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.jwtSecret)
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (Claims, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.jwtSecret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Warn(ctx, "token expired")
			return Claims{}, ErrExpiredToken
		}

		p.logger.WarnWithError(ctx, "failed to parse token", err)
		return Claims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return Claims{}, ErrInvalidJWTToken
	}

	return claims, nil
}

// Scope turns validated claims into the caller's tenant scope. Only a SUPERADMIN
// may omit the tenant.
func (p *AuthProcessor) Scope(claims Claims) (tenancy.Scope, error) {
	switch claims.Role {
	case tenancy.RoleSuperAdmin, tenancy.RoleAdmin, tenancy.RoleUser:
	default:
		return tenancy.Scope{}, ErrUnknownRole
	}

	scope := tenancy.Scope{Role: claims.Role, UserName: claims.Name}

	if claims.TenantID == "" {
		if claims.Role != tenancy.RoleSuperAdmin {
			return tenancy.Scope{}, ErrMissingTenant
		}
	} else {
		tenantID, err := uuid.Parse(claims.TenantID)
		if err != nil {
			return tenancy.Scope{}, ErrInvalidJWTToken
		}
		scope.TenantID = tenantID
	}

	if userID, err := uuid.Parse(claims.Subject); err == nil {
		scope.UserID = &userID
	}
	return scope, nil
}
