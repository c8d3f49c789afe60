package provider

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	dataURIPrefix = "data:image/"
	pngDataURI    = "data:image/png;base64,"
)

// QRFromPNG encodes PNG bytes as a data URI
func QRFromPNG(png []byte) string {
	return pngDataURI + base64.StdEncoding.EncodeToString(png)
}

// QRFromBase64 passes a data URI through and prefixes bare base64
func QRFromBase64(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, dataURIPrefix) {
		return s
	}
	return pngDataURI + s
}

// QRFromCode renders a raw pairing string as a PNG data URI
func QRFromCode(code string) (string, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to render qr code: %w", err)
	}
	return QRFromPNG(png), nil
}
