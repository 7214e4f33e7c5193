package domain

import "context"

// Alert is an SOS broadcast destined for a ward's emergency contacts.
// Actual delivery (SMS, WhatsApp, push) happens downstream; this service
// only hands the alert to a publisher collaborator.
type Alert struct {
	WardID    string `json:"ward_id"`
	WardName  string `json:"ward_name"`
	Message   string `json:"message"`
	Contacts  int    `json:"contacts"`
	Timestamp int64  `json:"timestamp"`
}

// AlertPublisher hands alerts to the notification pipeline.
type AlertPublisher interface {
	Publish(ctx context.Context, alert Alert) error
}
