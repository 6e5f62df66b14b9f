package models

// AuthStatus is the terminal state of a single login attempt.
type AuthStatus int

const (
	// AuthRejected means the credentials did not match a registered user.
	AuthRejected AuthStatus = iota
	// AuthAccepted means the credentials were verified.
	AuthAccepted
	// AuthError means the attempt could not be completed.
	AuthError
)

// String implements fmt.Stringer.
func (s AuthStatus) String() string {
	switch s {
	case AuthAccepted:
		return "accepted"
	case AuthError:
		return "error"
	default:
		return "rejected"
	}
}

// Reject reasons. They are kept apart for logs and metrics only and must
// never reach the client.
const (
	RejectReasonNotFound       = "not found"
	RejectReasonBadCredentials = "bad credentials"
)

// AuthResult is the outcome of an authentication strategy run.
type AuthResult struct {
	Status AuthStatus
	// User is set when Status is AuthAccepted.
	User User
	// Reason is set when Status is AuthRejected.
	Reason string
	// Err is set when Status is AuthError.
	Err error
}

// Decision is the verdict of the access gate for one request.
type Decision struct {
	Allowed bool
	// Login is the identity bound to the session when Allowed is true.
	Login string
}

// Deny is the zero Decision.
var Deny = Decision{}

// Allow returns a positive Decision for login.
func Allow(login string) Decision {
	return Decision{Allowed: true, Login: login}
}
