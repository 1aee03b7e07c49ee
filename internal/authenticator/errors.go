package authenticator

import "errors"

var (
	// ErrRPMismatch is returned when options name a relying party other than
	// the one this authenticator is bound to.
	ErrRPMismatch = errors.New("options are for a different relying party")

	// ErrAlgorithmNotOffered is returned when the server does not accept ES256.
	ErrAlgorithmNotOffered = errors.New("ES256 not offered by relying party")

	// ErrCredentialExcluded is returned when this device already holds a
	// credential from the exclusion list.
	ErrCredentialExcluded = errors.New("device already holds an excluded credential")

	// ErrNoMatchingCredential is returned when none of the allowed
	// credentials lives on this device.
	ErrNoMatchingCredential = errors.New("no allowed credential on this device")
)
