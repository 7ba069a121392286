package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"gofinances/internal/identity"
	"gofinances/internal/session"
)

type signInRequest struct {
	// Credential is the Google access token or the Apple identity
	// token, depending on the route.
	Credential string `json:"credential"`
}

type signInResponse struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

func (s *Server) handleGoogleSignIn(w http.ResponseWriter, r *http.Request) {
	s.handleSignIn(w, r, s.google, "google")
}

func (s *Server) handleAppleSignIn(w http.ResponseWriter, r *http.Request) {
	s.handleSignIn(w, r, s.apple, "apple")
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request, provider identity.Provider, name string) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if provider == nil {
		writeError(w, http.StatusNotImplemented, name+" sign in is not configured")
		return
	}

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := provider.SignIn(r.Context(), req.Credential)
	if err != nil {
		slog.WarnContext(r.Context(), "Sign in rejected", "provider", name, "error", err)
		writeError(w, http.StatusUnauthorized, "não foi possível conectar a conta "+name)
		return
	}

	if err := s.sessions.SignIn(r.Context(), u); err != nil {
		slog.ErrorContext(r.Context(), "Failed to persist session", "error", err)
		writeError(w, http.StatusInternalServerError, "could not persist session")
		return
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to issue session token", "error", err)
		writeError(w, http.StatusInternalServerError, "could not issue session token")
		return
	}

	writeJSON(w, http.StatusOK, signInResponse{Token: token, User: u})
}

type sessionResponse struct {
	State string       `json:"state"`
	User  session.User `json:"user"`
}

// handleSession reports or ends the current session.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		u, _ := requestUser(r)
		writeJSON(w, http.StatusOK, sessionResponse{
			State: s.sessions.State().String(),
			User:  u,
		})
	case http.MethodDelete:
		u, _ := requestUser(r)
		if err := s.sessions.SignOut(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Sign out failed", "error", err)
			writeError(w, http.StatusInternalServerError, "could not sign out")
			return
		}
		s.dashCache.Invalidate(u.ID)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", "GET, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
