package models

// Notification is a notification attached to an autoscale setting. It is a
// closed set: EmailNotification and WebhookNotification.
type Notification interface {
	// NotificationType returns the wire discriminator for the variant.
	NotificationType() string
}

// EmailNotification emails a list of recipients when autoscale acts.
type EmailNotification struct {
	Type         string   `json:"type" yaml:"type"`
	CustomEmails []string `json:"customEmails" yaml:"custom_emails"`
}

// NewEmailNotification creates an email notification for the given
// recipients.
func NewEmailNotification(recipients []string) EmailNotification {
	return EmailNotification{
		Type:         "Email",
		CustomEmails: recipients,
	}
}

// NotificationType implements Notification.
func (n EmailNotification) NotificationType() string { return n.Type }

// WebhookNotification posts to a webhook URI when autoscale acts.
type WebhookNotification struct {
	Type       string            `json:"type" yaml:"type"`
	ServiceURI string            `json:"serviceUri" yaml:"service_uri"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// NewWebhookNotification creates a webhook notification for the given URI
// and properties.
func NewWebhookNotification(uri string, properties map[string]string) WebhookNotification {
	return WebhookNotification{
		Type:       "Webhook",
		ServiceURI: uri,
		Properties: properties,
	}
}

// NotificationType implements Notification.
func (n WebhookNotification) NotificationType() string { return n.Type }
