package web

import (
	"net/http"

	"github.com/goliatone/go-filecms/internal/logging"
	"github.com/goliatone/go-filecms/internal/render"
	"github.com/goliatone/go-filecms/internal/session"
	"github.com/goliatone/go-filecms/pkg/interfaces"
)

const siteTitle = "File CMS"

func writeBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writePlain(w http.ResponseWriter, status int, msg string) {
	writeBody(w, status, render.ContentTypePlain, []byte(msg+"\n"))
}

func (s *Server) log(r *http.Request) interfaces.Logger {
	return s.logger.WithContext(r.Context())
}

// save persists session changes. Failures are logged; the response still goes
// out so the client is not left without an answer.
func (s *Server) save(w http.ResponseWriter, r *http.Request, st *session.State) {
	if err := s.sessions.Save(w, r, st); err != nil {
		s.log(r).Error("session.save_failed", "error", err)
	}
}

// page takes the pending flash, saves the session and writes the view.
func (s *Server) page(w http.ResponseWriter, r *http.Request, st *session.State, status int, view string, data pageData) {
	data.Flash = st.TakeFlash()
	data.Username = st.Username()
	if data.Title == "" {
		data.Title = siteTitle
	}

	body, err := s.views.render(view, data)
	if err != nil {
		s.fail(w, r, st, err)
		return
	}
	s.save(w, r, st)
	writeBody(w, status, render.ContentTypeHTML, body)
}

// redirectHome flashes msg and redirects to the listing.
func (s *Server) redirectHome(w http.ResponseWriter, r *http.Request, st *session.State, msg string) {
	if msg != "" {
		st.SetFlash(msg)
	}
	s.save(w, r, st)
	http.Redirect(w, r, "/", http.StatusFound)
}

// fail answers with a plain 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, st *session.State, err error) {
	s.log(r).Error("http.internal_error", "error", err)
	if st != nil {
		s.save(w, r, st)
	}
	writePlain(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func withDocument(logger interfaces.Logger, name string) interfaces.Logger {
	return logging.WithDocument(logger, name)
}
