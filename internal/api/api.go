package api

import (
	"net/http"

	authHandler "campaign-server/internal/auth/handler"
	campaignHandler "campaign-server/internal/campaign/handler"
	contactsHandler "campaign-server/internal/contacts/handler"
	"campaign-server/internal/observability"
	sessionsHandler "campaign-server/internal/sessions/handler"
	settingsHandler "campaign-server/internal/settings/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	authHandler     authHandler.Handler
	sessionsHandler sessionsHandler.Handler
	contactsHandler contactsHandler.Handler
	campaignHandler campaignHandler.Handler
	settingsHandler settingsHandler.Handler
	rateLimit       gin.HandlerFunc
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	sessionsHandler sessionsHandler.Handler,
	contactsHandler contactsHandler.Handler,
	campaignHandler campaignHandler.Handler,
	settingsHandler settingsHandler.Handler,
	rateLimit gin.HandlerFunc,
) API {
	return API{
		router:          router,
		authHandler:     authHandler,
		sessionsHandler: sessionsHandler,
		contactsHandler: contactsHandler,
		campaignHandler: campaignHandler,
		settingsHandler: settingsHandler,
		rateLimit:       rateLimit,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	apiGroup := a.router.Group("/api", a.authHandler.HandleJWTMiddleware)
	if a.rateLimit != nil {
		apiGroup.Use(a.rateLimit)
	}
	apiGroup.GET("/me", a.authHandler.GetUserInfo)

	sessions := apiGroup.Group("/sessions")
	{
		sessions.GET("", a.sessionsHandler.HandleListSessions)
		sessions.POST("", a.sessionsHandler.HandleCreateSession)
		sessions.GET("/:name", a.sessionsHandler.HandleGetSession)
		sessions.DELETE("/:name", a.sessionsHandler.HandleDeleteSession)
		sessions.POST("/:name/start", a.sessionsHandler.HandleStartSession)
		sessions.POST("/:name/stop", a.sessionsHandler.HandleStopSession)
		sessions.POST("/:name/restart", a.sessionsHandler.HandleRestartSession)
		sessions.GET("/:name/auth/qr", a.sessionsHandler.HandleGetQRCode)
		sessions.GET("/:name/status", a.sessionsHandler.HandleGetStatus)
		sessions.GET("/:name/me", a.sessionsHandler.HandleGetIdentity)
		sessions.PATCH("/:name/assign-tenant", a.sessionsHandler.HandleAssignTenant)
	}

	campaigns := apiGroup.Group("/campaigns")
	{
		campaigns.GET("", a.campaignHandler.HandleListCampaigns)
		campaigns.POST("", a.campaignHandler.HandleCreateCampaign)
		campaigns.GET("/sessions/active", a.campaignHandler.HandleListActiveSessions)
		campaigns.GET("/contacts/tags", a.campaignHandler.HandleListContactTags)
		campaigns.POST("/ai/preview", a.campaignHandler.HandlePreviewAIContent)
		campaigns.GET("/:id", a.campaignHandler.HandleGetCampaign)
		campaigns.PUT("/:id", a.campaignHandler.HandleUpdateCampaign)
		campaigns.DELETE("/:id", a.campaignHandler.HandleDeleteCampaign)
		campaigns.PATCH("/:id/toggle", a.campaignHandler.HandleToggleCampaign)
		campaigns.GET("/:id/report", a.campaignHandler.HandleGetReport)
	}

	contacts := apiGroup.Group("/contacts")
	{
		contacts.GET("", a.contactsHandler.HandleListContacts)
		contacts.POST("", a.contactsHandler.HandleCreateContact)
		contacts.GET("/tags", a.contactsHandler.HandleListContactTags)
		contacts.GET("/:id", a.contactsHandler.HandleGetContact)
		contacts.PUT("/:id", a.contactsHandler.HandleUpdateContact)
		contacts.DELETE("/:id", a.contactsHandler.HandleDeleteContact)
	}

	categories := apiGroup.Group("/categories")
	{
		categories.GET("", a.contactsHandler.HandleListCategories)
		categories.POST("", a.contactsHandler.HandleCreateCategory)
		categories.PUT("/:id", a.contactsHandler.HandleUpdateCategory)
		categories.DELETE("/:id", a.contactsHandler.HandleDeleteCategory)
	}

	apiGroup.GET("/settings", a.settingsHandler.HandleGetGatewaySettings)
	apiGroup.PUT("/settings", a.settingsHandler.HandleUpdateGatewaySettings)
	apiGroup.GET("/tenant-settings", a.settingsHandler.HandleGetTenantSettings)
	apiGroup.PUT("/tenant-settings", a.settingsHandler.HandleUpdateTenantSettings)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	a.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	a.router.GET("/metrics", gin.WrapH(observability.MetricsHandler()))
}
