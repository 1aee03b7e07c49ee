// Package http implements the REST transport of the trust server: magic-link
// sign-in, the two passkey ceremonies, passkey status and the subject
// profile. Tracing, logging and bearer authentication are middleware; every
// failure is written as {"error": "..."} using the app.Msg* wording.
package http
