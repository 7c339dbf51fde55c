package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/roster"
	"github.com/diegoclair/weekly-signup-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockCycleRepo   *mocks.MockCycleRepo
	mockSignupRepo  *mocks.MockSignupRepo
	mockDeliverer   *mocks.MockDeliverer
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	cycleRepo := mocks.NewMockCycleRepo(ctrl)
	dm.EXPECT().Cycle().Return(cycleRepo).AnyTimes()

	signupRepo := mocks.NewMockSignupRepo(ctrl)
	dm.EXPECT().Signup().Return(signupRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockCycleRepo:   cycleRepo,
		mockSignupRepo:  signupRepo,
		mockDeliverer:   mocks.NewMockDeliverer(ctrl),
	}

	return
}

// expectTransaction runs the transaction body against the same mocked repos.
func expectTransaction(m allMocks) *gomock.Call {
	return m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(dm contract.DataManager) error) error {
			return fn(m.mockDataManager)
		})
}

func testOptions() Options {
	return Options{
		Days:            []domain.Day{"Monday", "Tuesday"},
		Capacity:        roster.Capacity{Default: 2},
		ActivityName:    "Bible Study",
		MeetingInfo:     "Zoom: https://example.com/j/1",
		DeliveryTimeout: time.Second,
	}
}

func newTestInstance(t *testing.T, m allMocks) *Instance {
	t.Helper()

	instance, err := NewInstance(testOptions(), m.mockDataManager, m.mockDeliverer)
	require.NoError(t, err)
	require.NotNil(t, instance)

	return instance
}
