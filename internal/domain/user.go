package domain

import "time"

// User logs in by email. Password holds the bcrypt hash, never plaintext.
type User struct {
	ID          int64  `json:"id" db:"id"`
	Email       string `json:"email" db:"email"`
	Password    string `json:"-" db:"password"`
	FirstName   string `json:"first_name" db:"first_name"`
	LastName    string `json:"last_name" db:"last_name"`
	IsStaff     bool   `json:"is_staff" db:"is_staff"`
	IsSuperuser bool   `json:"-" db:"is_superuser"`
}

// PasswordResetToken is a single-use, time-limited opaque token delivered
// by email. Deleted on successful password change or left to expire.
type PasswordResetToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// IsExpired reports whether the token is past its expiry.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// ResetTokenTTL is the default lifetime applied when expires_at is absent
// at creation.
const ResetTokenTTL = time.Hour
