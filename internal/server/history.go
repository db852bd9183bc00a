package server

import (
	"net/http"

	"github.com/edgedeck/edgedeck/internal/history"
)

// HistoryHandler returns the operation log, optionally filtered by ?type=
// or ?range= (24h, 7d, 30d, all).
func HistoryHandler(logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if t := r.URL.Query().Get("type"); t != "" {
			writeData(w, logger.ByType(t))
			return
		}
		if rng := r.URL.Query().Get("range"); rng != "" {
			writeData(w, logger.ByRange(history.Range(rng)))
			return
		}
		writeData(w, logger.All())
	}
}

// ClearHistoryHandler empties the operation log.
func ClearHistoryHandler(logger *history.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Clear()
		writeData(w, true)
	}
}
