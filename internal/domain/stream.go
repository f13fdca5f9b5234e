package domain

// Stream names (must match the API publisher and the mail worker)
const (
	StreamMailReset = "stream:mail:password-reset"
)

// PasswordResetMailEvent is published when a user requests a password
// reset; the mail worker consumes it and delivers the message.
type PasswordResetMailEvent struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	ResetURL string `json:"reset_url"`
}

// StreamMessage is a raw message read from a Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}
