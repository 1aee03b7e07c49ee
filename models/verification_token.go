package models

import "time"

// VerificationToken is a single-use sign-in token sent by email.
// Neither the email nor the token are stored in plaintext: IdentifierHash is
// the lookup hash of the email and TokenHash is a keyed hash of the token.
type VerificationToken struct {
	IdentifierHash string
	TokenHash      string
	ExpiresAt      time.Time
}

// TableName returns the name of the database table associated with
// VerificationToken.
func (VerificationToken) TableName() string {
	return "verification_tokens"
}

// SignInRequest is the body of the sign-in link request.
type SignInRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SignInVerification is the body used to redeem a sign-in link.
type SignInVerification struct {
	Email string `json:"email"`
	Token string `json:"token"`
}
