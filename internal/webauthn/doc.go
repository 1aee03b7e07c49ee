// Package webauthn encodes what a software authenticator sends back in
// WebAuthn ceremonies: authenticator data, attestation objects and COSE
// public keys.
//
// Decoding and verification on the server side go through
// github.com/go-webauthn/webauthn/protocol.
package webauthn
