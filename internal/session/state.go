package session

import "github.com/gorilla/sessions"

// State is the per-request view of a client session. It is not safe for
// concurrent use; every request loads its own.
type State struct {
	session  *sessions.Session
	username string
	dirty    bool
}

// IsSignedIn reports whether a username is attached to the session.
func (s *State) IsSignedIn() bool {
	return s.username != ""
}

// Username returns the signed in username or "".
func (s *State) Username() string {
	return s.username
}

// SignIn attaches username to the session.
func (s *State) SignIn(username string) {
	s.username = username
	s.session.Values[keyUsername] = username
	s.dirty = true
}

// SignOut removes the username. Other session values are kept so a flash set
// afterwards survives the redirect.
func (s *State) SignOut() {
	s.username = ""
	delete(s.session.Values, keyUsername)
	s.dirty = true
}

// SetFlash replaces any pending flash message with msg.
func (s *State) SetFlash(msg string) {
	s.session.Flashes(keyFlash)
	s.session.AddFlash(msg, keyFlash)
	s.dirty = true
}

// TakeFlash returns the pending flash message and clears it. It returns ""
// when there is none.
func (s *State) TakeFlash() string {
	flashes := s.session.Flashes(keyFlash)
	if len(flashes) == 0 {
		return ""
	}
	s.dirty = true
	msg, _ := flashes[len(flashes)-1].(string)
	return msg
}
