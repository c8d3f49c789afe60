package store

// WhatsApp session ENUMs
const (
	SessionStatusStopped    = "STOPPED"
	SessionStatusScanQRCode = "SCAN_QR_CODE"
	SessionStatusWorking    = "WORKING"
	SessionStatusFailed     = "FAILED"
)

const (
	ProviderWaha      = "WAHA"
	ProviderEvolution = "EVOLUTION"
)

// Campaign ENUMs
const (
	CampaignStatusPending   = "PENDING"
	CampaignStatusRunning   = "RUNNING"
	CampaignStatusPaused    = "PAUSED"
	CampaignStatusCompleted = "COMPLETED"
	CampaignStatusFailed    = "FAILED"
)

const (
	MessageTypeText     = "text"
	MessageTypeImage    = "image"
	MessageTypeVideo    = "video"
	MessageTypeAudio    = "audio"
	MessageTypeDocument = "document"
	MessageTypeSequence = "sequence"
	MessageTypeOpenAI   = "openai"
	MessageTypeGroq     = "groq"
	MessageTypeWait     = "wait"
)

// Campaign message ENUMs
const (
	MessageStatusPending = "PENDING"
	MessageStatusSent    = "SENT"
	MessageStatusFailed  = "FAILED"
)
