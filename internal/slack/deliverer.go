package slack

import (
	"context"
	"fmt"

	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
)

// Deliverer posts payloads to the signup channel, or to a user's DM.
type Deliverer struct {
	client    contract.SlackClient
	channelID string
}

func NewDeliverer(client contract.SlackClient, channelID string) *Deliverer {
	return &Deliverer{
		client:    client,
		channelID: channelID,
	}
}

func (d *Deliverer) Deliver(ctx context.Context, target entity.Target, payload entity.Payload) error {
	channelID := d.channelID
	if target.Kind == entity.TargetUser {
		channelID = target.UserID
	}

	if _, _, err := d.client.PostMessageContext(ctx, channelID, MessageOptions(payload)...); err != nil {
		return fmt.Errorf("failed to post %s to slack channel %s: %w", payload.Kind, channelID, err)
	}

	return nil
}
