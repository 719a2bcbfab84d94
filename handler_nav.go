package livenav

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/theoremus-urban-solutions/gnss-livenav/feed"
	"github.com/theoremus-urban-solutions/gnss-livenav/osrm"
	"github.com/theoremus-urban-solutions/gnss-livenav/route"
)

type routeResponse struct {
	RouteID   string           `json:"route_id"`
	DistanceM float64          `json:"distance_m"`
	DurationS float64          `json:"duration_s"`
	Maneuvers []route.Maneuver `json:"maneuvers"`
	Geometry  [][2]float64     `json:"geometry"`
}

func (s *Server) handleCreateRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing or malformed JSON body.")
		return
	}
	waypoints, err := parseRouteRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := s.nav.CreateRoute(r.Context(), waypoints)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, osrm.ErrNoRoute) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, buildRouteResponse(created))
}

func buildRouteResponse(r *route.Route) routeResponse {
	resp := routeResponse{
		RouteID:   r.ID,
		DistanceM: r.DistanceM,
		DurationS: r.DurationS,
		Maneuvers: r.Maneuvers,
		Geometry:  make([][2]float64, len(r.Geometry)),
	}
	for i, p := range r.Geometry {
		resp.Geometry[i] = [2]float64{p.Lon, p.Lat}
	}
	return resp
}

func (s *Server) handleClearRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	s.nav.ClearRoute()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFix(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var f feed.Fix
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, http.StatusBadRequest, "Missing or malformed JSON body.")
		return
	}
	if err := s.nav.HandleFix(f); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFixGTFSRT(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "cannot read body")
		return
	}
	fixes, err := feed.DecodeGTFSRT(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	accepted := 0
	for _, f := range fixes {
		if err := s.nav.HandleFix(f); err == nil {
			accepted++
		}
	}
	writeJSON(w, http.StatusOK, map[string]int{"accepted": accepted})
}

func (s *Server) handleLatestPosition(w http.ResponseWriter, r *http.Request) {
	f, ok := s.nav.Adapter().Latest()
	if !ok {
		writeError(w, http.StatusNotFound, "No GNSS data yet")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleNavStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.nav.Status())
}
