package provider

import "strings"

// Status is the normalized session status shared by every provider
type Status string

const (
	StatusStopped    Status = "STOPPED"
	StatusScanQRCode Status = "SCAN_QR_CODE"
	StatusWorking    Status = "WORKING"
	StatusFailed     Status = "FAILED"
)

var wahaStatuses = map[string]Status{
	"WORKING":      StatusWorking,
	"SCAN_QR_CODE": StatusScanQRCode,
	"STOPPED":      StatusStopped,
	"FAILED":       StatusFailed,
}

var evolutionStatuses = map[string]Status{
	"open":       StatusWorking,
	"connecting": StatusScanQRCode,
	"qr":         StatusScanQRCode,
	"close":      StatusStopped,
}

// NormalizeWahaStatus maps a WAHA session status. Unknown values, STARTING included, are STOPPED.
func NormalizeWahaStatus(raw string) Status {
	if s, ok := wahaStatuses[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusStopped
}

// NormalizeEvolutionStatus maps an Evolution connection state. Unknown values are STOPPED.
func NormalizeEvolutionStatus(raw string) Status {
	if s, ok := evolutionStatuses[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusStopped
}

// EffectiveStatus merges the persisted and live statuses. A persisted
// SCAN_QR_CODE wins so a pending scan is not hidden by a lagging provider.
func EffectiveStatus(persisted, live Status) Status {
	if persisted == StatusScanQRCode {
		return StatusScanQRCode
	}
	return live
}
