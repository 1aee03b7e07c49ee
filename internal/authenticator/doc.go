// Package authenticator implements a software platform authenticator for the
// go-trust-keeper client.
//
// Keys are P-256, generated on the device and kept in the client's SQLite
// database together with their signature counters. Registrations use "none"
// attestation; both registrations and assertions are produced in the same
// wire shape a browser would send, so the server cannot tell them apart from
// a hardware authenticator that reports user verification.
package authenticator
