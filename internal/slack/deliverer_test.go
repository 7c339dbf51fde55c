package slack

import (
	"context"
	"testing"

	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	"github.com/diegoclair/weekly-signup-bot/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDeliverer_Deliver(t *testing.T) {
	payload := entity.Payload{Kind: entity.PayloadReminder, Title: "⏰ *Reminder!*"}

	tests := []struct {
		name      string
		target    entity.Target
		buildMock func(client *mocks.MockSlackClient)
		wantErr   bool
	}{
		{
			name:   "Should post broadcasts to the signup channel",
			target: entity.Broadcast(),
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().
					PostMessageContext(gomock.Any(), "C123456789", gomock.Any(), gomock.Any()).
					Return("C123456789", "1700000000.000100", nil).Times(1)
			},
		},
		{
			name:   "Should post to the user for direct targets",
			target: entity.ToUser("U123"),
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().
					PostMessageContext(gomock.Any(), "U123", gomock.Any(), gomock.Any()).
					Return("D123", "1700000000.000100", nil).Times(1)
			},
		},
		{
			name:   "Should return error when slack fails",
			target: entity.Broadcast(),
			buildMock: func(client *mocks.MockSlackClient) {
				client.EXPECT().
					PostMessageContext(gomock.Any(), "C123456789", gomock.Any(), gomock.Any()).
					Return("", "", assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockSlackClient(ctrl)
			tt.buildMock(client)

			err := NewDeliverer(client, "C123456789").Deliver(context.Background(), tt.target, payload)
			if tt.wantErr {
				assert.ErrorIs(t, err, assert.AnError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
