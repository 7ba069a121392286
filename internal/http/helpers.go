package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// formatBRL renders cents the way the dashboard shows money:
// "R$ 17.400,00", thousands separated by dots, cents by a comma.
func formatBRL(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	reais := strconv.FormatInt(cents/100, 10)
	grouped := make([]byte, 0, len(reais)+len(reais)/3)
	for i, d := range []byte(reais) {
		if i > 0 && (len(reais)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	s := "R$ " + string(grouped) + "," + pad2(cents%100)
	if neg {
		return "-" + s
	}
	return s
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// formatShortDate renders dates the way the transaction list shows
// them, dd/MM/yy.
func formatShortDate(t time.Time) string {
	return t.Format("02/01/06")
}
