package http

import (
	"net/http"

	"gofinances/internal/core"
)

// handleCategories lists the fixed category catalog the register
// screen picks from.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, core.Categories())
}
