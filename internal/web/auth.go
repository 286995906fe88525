package web

import (
	"net/http"
)

const (
	messageWelcome            = "Welcome!"
	messageSignedOut          = "You have been signed out."
	messageInvalidCredentials = "Invalid Credentials"
)

func (s *Server) handleSignInForm(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Load(r)
	s.page(w, r, st, http.StatusOK, viewSignIn, pageData{})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Load(r)
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	ok, err := s.credentials.Verify(r.Context(), username, password)
	if err != nil {
		s.fail(w, r, st, err)
		return
	}
	if !ok {
		s.log(r).Info("auth.sign_in_rejected", "username", username)
		s.page(w, r, st, http.StatusUnprocessableEntity, viewSignIn, pageData{
			Error:        messageInvalidCredentials,
			FormUsername: username,
		})
		return
	}

	st.SignIn(username)
	s.log(r).Info("auth.signed_in", "username", username)
	s.redirectHome(w, r, st, messageWelcome)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Load(r)
	username := st.Username()
	st.SignOut()
	s.log(r).Info("auth.signed_out", "username", username)
	s.redirectHome(w, r, st, messageSignedOut)
}
