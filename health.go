package livenav

import (
	"net/http"
)

type healthResponse struct {
	Status        string `json:"status"`
	ActiveRouteID string `json:"active_route_id,omitempty"`
	HasFix        bool   `json:"has_fix"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	if active := s.nav.Store().Get(); active != nil {
		resp.ActiveRouteID = active.ID
	}
	_, resp.HasFix = s.nav.Adapter().Latest()
	writeJSON(w, http.StatusOK, resp)
}
