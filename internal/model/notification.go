package model

// NotificationType is the severity of a transient user notification
type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
)

// Notification is a transient user-facing message. Only one notification is
// visible at a time; a new one replaces the prior.
type Notification struct {
	Type    NotificationType
	Message string
}

// Success creates a success notification
func Success(message string) Notification {
	return Notification{Type: NotifySuccess, Message: message}
}

// Error creates an error notification
func Error(message string) Notification {
	return Notification{Type: NotifyError, Message: message}
}
