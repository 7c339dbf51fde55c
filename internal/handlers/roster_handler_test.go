package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	"github.com/diegoclair/weekly-signup-bot/internal/handlers"
	"github.com/diegoclair/weekly-signup-bot/internal/handlers/test"
	"github.com/diegoclair/weekly-signup-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type rosterBody struct {
	CycleID string `json:"cycle_id"`
	Phase   string `json:"phase"`
	Days    []struct {
		Day       string   `json:"day"`
		Names     []string `json:"names"`
		Taken     int      `json:"taken"`
		Limit     int      `json:"limit"`
		Remaining int      `json:"remaining"`
	} `json:"days"`
}

func TestRosterHandler_GetRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signupService := mocks.NewMockSignupService(ctrl)
	signupService.EXPECT().Snapshot().Return(entity.Snapshot{
		CycleID: "cycle-1",
		Days: []entity.DaySlots{
			{Day: "Monday", Names: []string{"Alice", "Bob"}, Limit: 2},
			{Day: "Tuesday", Names: []string{"Carol"}, Limit: 2},
			{Day: domain.Unavailable, Names: []string{}},
		},
	}).Times(1)
	signupService.EXPECT().Phase().Return(domain.PhaseOpen).Times(1)

	handler := handlers.NewRosterHandler(signupService)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/roster", nil)
	require.NoError(t, err)
	resp := test.CreateTestRecorder()

	handler.GetRoster(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

	var body rosterBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	assert.Equal(t, "cycle-1", body.CycleID)
	assert.Equal(t, string(domain.PhaseOpen), body.Phase)
	require.Len(t, body.Days, 3)

	assert.Equal(t, "Monday", body.Days[0].Day)
	assert.Equal(t, []string{"Alice", "Bob"}, body.Days[0].Names)
	assert.Equal(t, 2, body.Days[0].Taken)
	assert.Equal(t, 0, body.Days[0].Remaining)

	assert.Equal(t, 1, body.Days[1].Remaining)

	assert.Equal(t, "Unavailable", body.Days[2].Day)
	assert.Equal(t, []string{}, body.Days[2].Names)
	assert.Equal(t, -1, body.Days[2].Remaining)
}
