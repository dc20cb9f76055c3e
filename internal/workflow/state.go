// Package workflow owns the client-side state machine of a design session:
// login, design generation, result display, logout. All mutable session state
// lives in the Controller; nothing is persisted anywhere.
package workflow

// View identifies which screen of the studio the user is on.
type View string

const (
	ViewLoggedOut View = "logged_out"
	ViewLoggedIn  View = "logged_in"
)

// Status describes where an asynchronous operation currently stands.
type Status int

const (
	StatusIdle Status = iota
	StatusInFlight
	StatusSucceeded
	StatusFailed
)

// String returns the status name for logs and error output.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusInFlight:
		return "in_flight"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// RequestState is the lifecycle of one request kind. Message carries the
// user-facing text of the last failure and is empty otherwise.
type RequestState struct {
	Status  Status
	Message string
}

// Session is the client-held proof of authentication. The token is opaque
// and stored verbatim.
type Session struct {
	Authenticated bool
	Token         string
}
