package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"gofinances/internal/core"
	"gofinances/internal/form"
)

type transactionRequest struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

type fieldErrorView struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleTransactions registers a new transaction for the signed-in
// user. Validation failures come back as 422 with one entry per
// violated field.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	u, _ := requestUser(r)

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft := form.Draft{
		Name:        req.Name,
		Amount:      req.Amount,
		Kind:        core.Kind(req.Type),
		CategoryKey: req.Category,
	}

	tx, err := s.register.Register(r.Context(), u.ID, draft)
	if err != nil {
		var verrs form.ValidationErrors
		if errors.As(err, &verrs) {
			views := make([]fieldErrorView, len(verrs))
			for i, fe := range verrs {
				views[i] = fieldErrorView{Field: fe.Field, Message: fe.Err.Error()}
			}
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": views})
			return
		}

		slog.ErrorContext(r.Context(), "Failed to register transaction", "user_id", u.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "não foi possível salvar")
		return
	}

	s.dashCache.Invalidate(u.ID)
	writeJSON(w, http.StatusCreated, newTransactionView(tx))
}
