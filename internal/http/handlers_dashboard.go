package http

import (
	"errors"
	"log/slog"
	"net/http"

	"gofinances/internal/core"
	"gofinances/internal/ledger"
	"gofinances/internal/summary"
)

type transactionView struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Amount   string        `json:"amount"`
	Type     string        `json:"type"`
	Category core.Category `json:"category"`
	Date     string        `json:"date"`
}

type highlightView struct {
	Amount          string `json:"amount"`
	LastTransaction string `json:"lastTransaction"`
}

type dashboardResponse struct {
	Transactions []transactionView `json:"transactions"`
	Highlights   struct {
		Entries  highlightView `json:"entries"`
		Expenses highlightView `json:"expenses"`
		Total    highlightView `json:"total"`
	} `json:"highlights"`
}

// handleDashboard returns the transaction list and the three highlight
// cards, newest transaction first.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	u, _ := requestUser(r)

	if cached, ok := s.dashCache.Get(u.ID); ok {
		slog.DebugContext(r.Context(), "Dashboard cache hit", "user_id", u.ID)
		writeJSON(w, http.StatusOK, cached)
		return
	}

	txs, err := s.ledger.Load(r.Context(), u.ID)
	if err != nil {
		if errors.Is(err, ledger.ErrCorruptLedger) {
			slog.ErrorContext(r.Context(), "Corrupt ledger", "user_id", u.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "stored transactions could not be read")
			return
		}
		slog.ErrorContext(r.Context(), "Failed to load ledger", "user_id", u.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load transactions")
		return
	}

	resp := buildDashboard(txs)
	s.dashCache.Set(u.ID, resp)
	writeJSON(w, http.StatusOK, resp)
}

func buildDashboard(txs []core.Transaction) dashboardResponse {
	var resp dashboardResponse

	resp.Transactions = make([]transactionView, 0, len(txs))
	// Newest first for the screen list.
	for i := len(txs) - 1; i >= 0; i-- {
		resp.Transactions = append(resp.Transactions, newTransactionView(txs[i]))
	}

	h := summary.Summarize(txs)
	resp.Highlights.Entries = newHighlightView(h.Entries, "Última entrada dia ")
	resp.Highlights.Expenses = newHighlightView(h.Expenses, "Última saída dia ")

	resp.Highlights.Total = highlightView{Amount: formatBRL(h.Balance.Total.Cents)}
	if label := h.PeriodLabel(); label != "" {
		resp.Highlights.Total.LastTransaction = label
	} else {
		resp.Highlights.Total.LastTransaction = "Não há transações"
	}

	return resp
}

func newTransactionView(tx core.Transaction) transactionView {
	amount := formatBRL(tx.Amount.Cents)
	if tx.Kind == core.Negative {
		amount = "- " + amount
	}

	cat, ok := core.CategoryByKey(tx.Category)
	if !ok {
		cat = core.Category{Key: tx.Category, Name: tx.Category}
	}

	return transactionView{
		ID:       tx.ID,
		Name:     tx.Name,
		Amount:   amount,
		Type:     string(tx.Kind),
		Category: cat,
		Date:     formatShortDate(tx.Date),
	}
}

func newHighlightView(c summary.Card, prefix string) highlightView {
	v := highlightView{Amount: formatBRL(c.Total.Cents)}
	if label := c.LastLabel(); label != "" {
		v.LastTransaction = prefix + label
	} else {
		v.LastTransaction = "Não há transações"
	}
	return v
}
