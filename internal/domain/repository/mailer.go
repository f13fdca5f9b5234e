package repository

import "context"

// Mailer delivers a message to an email address. The only contract the
// core has with it is fire-and-forget with logged failure.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}
