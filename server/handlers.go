package server

import (
	"encoding/json"
	"net/http"

	"github.com/mweiss/ligaledger"
)

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "ligaledger",
	})
}

// handleLeague serves the reconstructed league overview. The overview is
// cached for the configured TTL; concurrent requests share one
// reconstruction. An optional "day" query parameter computes the overview
// for a past business day instead of the current one.
func (s *Server) handleLeague(w http.ResponseWriter, r *http.Request) {
	key := "league"
	var asOf ligaledger.Date
	if raw := r.URL.Query().Get("day"); raw != "" {
		day, err := ligaledger.ParseDate(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid day parameter")
			return
		}
		asOf = day
		key = "league@" + day.String()
	}

	overview, err := s.cache.Get(key, func() (*ligaledger.Overview, error) {
		in, err := s.provider.Snapshot(r.Context())
		if err != nil {
			return nil, err
		}
		if !asOf.IsZero() {
			in.AsOf = asOf
		}
		return ligaledger.BuildOverview(s.league, in, s.log)
	})
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to build league overview")
		s.writeError(w, http.StatusBadGateway, "league data unavailable")
		return
	}

	s.writeJSON(w, http.StatusOK, overview)
}

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
