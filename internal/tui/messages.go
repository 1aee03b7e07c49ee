package tui

import (
	"time"

	"github.com/MKhiriev/go-trust-keeper/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// sessionStartedMsg is produced when a sign-in flow stored a session.
type sessionStartedMsg struct {
	session models.Session
}

type signedOutMsg struct {
	err error
}

type linkSentMsg struct {
	err error
}

type signInDoneMsg struct {
	session models.Session
	err     error
}

type unlockDoneMsg struct {
	err error
}

type enrollDoneMsg struct {
	credential models.Credential
	err        error
}

type statusLoadedMsg struct {
	status models.PasskeyStatus
	err    error
}

type lockDoneMsg struct {
	err error
}

// trustTickMsg refreshes the remaining elevation time. Ticks of an older
// session generation are dropped.
type trustTickMsg struct {
	gen int
	at  time.Time
}

// profileOpenMsg opens the profile page for subjectID.
type profileOpenMsg struct {
	subjectID string
}

// profileTickMsg re-checks the elevation behind the profile page.
type profileTickMsg struct {
	gen int
}

type profileLoadedMsg struct {
	gen     int
	profile models.Subject
	err     error
}
