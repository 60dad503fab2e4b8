// internal/notify/models.go
package notify

type Input struct {
	LeadID      string                 `json:"leadId"`
	ContactName string                 `json:"contactName,omitempty"`
	Email       string                 `json:"email,omitempty"`
	Priority    string                 `json:"priority"`
	Score       int                    `json:"score"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type Result struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"` // "sent", "failed", "disabled"
	SentAt         string `json:"sentAt"` // ISO 8601
}

// Notification types
const (
	TypeNewLead       = "new_lead"
	TypeLeadConfirmed = "lead_confirmed"
)

// Statuses
const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)
