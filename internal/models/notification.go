package models

// EmailNotificationRequest is one outgoing message. At least one of Content
// and HTMLContent should be set.
type EmailNotificationRequest struct {
	To          string `json:"to" validate:"required,email"`
	Subject     string `json:"subject" validate:"required"`
	Content     string `json:"content,omitempty"`
	HTMLContent string `json:"htmlContent,omitempty"`
}
