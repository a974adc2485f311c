package entity

import "time"

// VerificationToken is a single-use email verification token.
// It is deleted on successful verification or when presented after expiry.
type VerificationToken struct {
	Token     string    // Opaque token value embedded in the verification link
	UserID    uint      // User the token was issued for
	Email     string    // Email address the token was sent to
	ExpiresAt time.Time // Fixed 24 hours from issuance
	CreatedAt time.Time
}

// IsExpired returns true if the token has passed its expiration time.
func (t *VerificationToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
