package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/goliatone/go-filecms/internal/documents"
	"github.com/goliatone/go-filecms/internal/render"
)

func doesNotExist(name string) string   { return fmt.Sprintf("%s does not exist.", name) }
func wasCreated(name string) string     { return fmt.Sprintf("%s was created.", name) }
func hasBeenUpdated(name string) string { return fmt.Sprintf("%s has been updated.", name) }
func hasBeenDeleted(name string) string { return fmt.Sprintf("%s has been deleted.", name) }

func filenameVar(r *http.Request) string {
	return mux.Vars(r)["filename"]
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Load(r)

	files, err := s.documents.List(r.Context())
	if err != nil {
		s.fail(w, r, st, err)
		return
	}
	s.page(w, r, st, http.StatusOK, viewIndex, pageData{Files: files})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Load(r)
	name := filenameVar(r)

	content, err := s.documents.Read(r.Context(), name)
	if err != nil {
		if documents.IsMissing(err) {
			s.redirectHome(w, r, st, doesNotExist(name))
			return
		}
		s.fail(w, r, st, err)
		return
	}

	out, err := s.renderer.Render(name, content)
	if err != nil {
		if errors.Is(err, render.ErrUnsupportedFormat) {
			withDocument(s.log(r), name).Warn("document.format_unsupported", "error", err)
			s.save(w, r, st)
			writePlain(w, http.StatusInternalServerError, "Unsupported document format: "+name)
			return
		}
		s.fail(w, r, st, err)
		return
	}
	s.save(w, r, st)
	writeBody(w, http.StatusOK, out.ContentType, out.Body)
}

func (s *Server) handleNewForm(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Load(r)
	if !s.sessions.RequireSignedIn(w, r, st) {
		return
	}
	s.page(w, r, st, http.StatusOK, viewNew, pageData{})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Load(r)
	if !s.sessions.RequireSignedIn(w, r, st) {
		return
	}

	name := strings.TrimSpace(r.PostFormValue("filename"))
	if err := documents.ValidateName(name); err != nil {
		s.page(w, r, st, http.StatusUnprocessableEntity, viewNew, pageData{
			Error:    documents.ValidationMessage(err),
			Filename: name,
		})
		return
	}

	if err := s.documents.CreateEmpty(r.Context(), name); err != nil {
		s.fail(w, r, st, err)
		return
	}
	withDocument(s.log(r), name).Info("document.created", "user", st.Username())
	s.redirectHome(w, r, st, wasCreated(name))
}

func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Load(r)
	if !s.sessions.RequireSignedIn(w, r, st) {
		return
	}
	name := filenameVar(r)

	content, err := s.documents.Read(r.Context(), name)
	if err != nil {
		if documents.IsMissing(err) {
			s.redirectHome(w, r, st, doesNotExist(name))
			return
		}
		s.fail(w, r, st, err)
		return
	}
	s.page(w, r, st, http.StatusOK, viewEdit, pageData{
		Filename: name,
		Content:  string(content),
	})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Load(r)
	if !s.sessions.RequireSignedIn(w, r, st) {
		return
	}
	name := filenameVar(r)
	content := r.PostFormValue("content")

	if err := documents.ValidateName(name); err != nil {
		s.page(w, r, st, http.StatusUnprocessableEntity, viewEdit, pageData{
			Error:    documents.ValidationMessage(err),
			Filename: name,
			Content:  content,
		})
		return
	}

	event := "document.updated"
	if !s.documents.Exists(r.Context(), name) {
		event = "document.created"
	}
	if err := s.documents.Write(r.Context(), name, []byte(content)); err != nil {
		s.fail(w, r, st, err)
		return
	}
	withDocument(s.log(r), name).Info(event, "user", st.Username(), "bytes", len(content))
	s.redirectHome(w, r, st, hasBeenUpdated(name))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	st := s.sessions.Load(r)
	if !s.sessions.RequireSignedIn(w, r, st) {
		return
	}
	name := filenameVar(r)

	if err := s.documents.Delete(r.Context(), name); err != nil {
		if documents.IsMissing(err) {
			s.redirectHome(w, r, st, doesNotExist(name))
			return
		}
		s.fail(w, r, st, err)
		return
	}
	withDocument(s.log(r), name).Info("document.deleted", "user", st.Username())
	s.redirectHome(w, r, st, hasBeenDeleted(name))
}
