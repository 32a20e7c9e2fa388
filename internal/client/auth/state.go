package auth

// State is the position of the auth machine. Transitions:
//
//	Anonymous     --Login-->            Authenticating
//	Authenticating --server accepts-->  Authenticated
//	Authenticating --server rejects-->  Error
//	Authenticating --network/body bad-> Anonymous
//	Authenticated --Logout or 401-->    Anonymous
//	Error         --Login-->            Authenticating
//
// A rehydrated credential starts the machine in Authenticated.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
	StateError
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateError:
		return "error"
	}
	return "unknown"
}
