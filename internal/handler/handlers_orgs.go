package handler

import (
	"net/http"

	"github.com/daxp472/CMS/internal/models"
)

type policeStationResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	District string `json:"district"`
	State    string `json:"state"`
}

type courtResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	CourtType string `json:"court_type"`
	District  string `json:"district"`
	State     string `json:"state"`
}

func (h *Handler) handleListPoliceStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.svc.ListPoliceStations(r.Context())
	if err != nil {
		logHandlerErr(h.logger, r, "list police stations", err)
		writeError(w, err)
		return
	}
	out := make([]policeStationResponse, 0, len(stations))
	for _, st := range stations {
		out = append(out, toPoliceStationResponse(st))
	}
	writeJSON(w, http.StatusOK, out)
}

func toPoliceStationResponse(st *models.PoliceStation) policeStationResponse {
	return policeStationResponse{
		ID:       st.ID.String(),
		Name:     st.Name,
		Code:     st.Code,
		District: st.District,
		State:    st.State,
	}
}

func (h *Handler) handleListCourts(w http.ResponseWriter, r *http.Request) {
	courts, err := h.svc.ListCourts(r.Context())
	if err != nil {
		logHandlerErr(h.logger, r, "list courts", err)
		writeError(w, err)
		return
	}
	out := make([]courtResponse, 0, len(courts))
	for _, c := range courts {
		out = append(out, courtResponse{
			ID:        c.ID.String(),
			Name:      c.Name,
			Code:      c.Code,
			CourtType: string(c.CourtType),
			District:  c.District,
			State:     c.State,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
