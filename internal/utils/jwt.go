package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trust-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by GenerateJWTToken when any argument is
// empty or the duration is not positive.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")

// GenerateJWTToken signs an HS256 session token for subjectID valid for
// tokenDuration. Each token carries a fresh UUIDv7 "jti".
func GenerateJWTToken(issuer string, subjectID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subjectID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := jwt.NewNumericDate(time.Now())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		ID:        NewUUIDGenerator().Generate(),
		Issuer:    issuer,
		Subject:   subjectID,
		IssuedAt:  now,
		NotBefore: now,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
	})

	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign JWT token: %w", err)
	}
	return models.Token{Token: token, SignedString: signed, SubjectID: subjectID}, nil
}

// ValidateAndParseJWTToken checks the HS256 signature, the issuer and the
// expiry of tokenString, which must be present, and returns the token with
// its non-empty subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	keyFunc := func(*jwt.Token) (any, error) { return []byte(tokenSignKey), nil }

	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, keyFunc,
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("validate JWT token: %w", err)
	}

	subjectID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("read JWT subject: %w", err)
	}
	if subjectID == "" {
		return models.Token{}, errors.New("JWT token has no subject")
	}

	return models.Token{Token: token, SignedString: tokenString, SubjectID: subjectID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseSubjectFromJWT reads the "sub" claim without verifying the signature.
// The client uses it to learn its own subject id; it must never be used for
// authorization.
func ParseSubjectFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject in token")
	}
	return sub, nil
}
