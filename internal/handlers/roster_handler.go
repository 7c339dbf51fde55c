package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
)

type RosterHandler struct {
	signupService contract.SignupService
}

func NewRosterHandler(signupService contract.SignupService) *RosterHandler {
	return &RosterHandler{signupService: signupService}
}

type daySlotsResponse struct {
	Day       string   `json:"day"`
	Names     []string `json:"names"`
	Taken     int      `json:"taken"`
	Limit     int      `json:"limit"`
	Remaining int      `json:"remaining"`
}

type rosterResponse struct {
	CycleID string             `json:"cycle_id"`
	Phase   string             `json:"phase"`
	Days    []daySlotsResponse `json:"days"`
}

// GetRoster returns the current roster. Remaining is -1 for days without a limit.
func (h *RosterHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	snapshot := h.signupService.Snapshot()

	response := rosterResponse{
		CycleID: snapshot.CycleID,
		Phase:   string(h.signupService.Phase()),
		Days:    make([]daySlotsResponse, 0, len(snapshot.Days)),
	}
	for _, slots := range snapshot.Days {
		response.Days = append(response.Days, daySlotsResponse{
			Day:       string(slots.Day),
			Names:     slots.Names,
			Taken:     slots.Taken(),
			Limit:     slots.Limit,
			Remaining: slots.Remaining(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
