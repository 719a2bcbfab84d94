package nav

import (
	"github.com/theoremus-urban-solutions/gnss-livenav/route"
)

// Status values reported to clients.
const (
	StatusSuccess = "success"
	StatusNoRoute = "no_route"
	StatusError   = "error"
)

// NavStatus is the externally published guidance summary.
type NavStatus struct {
	Status       string  `json:"status"`
	TurnType     string  `json:"turn_type"`
	TurnM        float64 `json:"turn_m"`
	DestinationM float64 `json:"destination_m"`
	Message      string  `json:"message"`
}

// BuildStatus assembles the guidance summary from the active route and the
// latest progress. Pure function, safe to call at any cadence.
func BuildStatus(r *route.Route, p Progress, lastRerouteFailed bool) NavStatus {
	if r == nil || !p.Valid {
		return NavStatus{Status: StatusNoRoute, Message: "Route not created yet"}
	}
	if lastRerouteFailed {
		return NavStatus{
			Status:       StatusError,
			DestinationM: p.ToDestinationM,
			Message:      "Went away from planned route.",
		}
	}
	st := NavStatus{
		Status:       StatusSuccess,
		TurnType:     route.TurnStraight.String(),
		DestinationM: p.ToDestinationM,
	}
	if p.Arrived {
		st.TurnType = route.TurnArrive.String()
		st.Message = "You have arrived at your destination."
		return st
	}
	if p.NextManeuver >= 0 && p.NextManeuver < len(r.Maneuvers) {
		m := r.Maneuvers[p.NextManeuver]
		st.TurnType = m.Turn.String()
		st.TurnM = p.ToNextManeuverM
		st.Message = m.Instruction
	}
	return st
}
