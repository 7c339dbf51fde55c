package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/notification"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/roster"
)

type transition struct {
	from domain.Phase
	to   domain.Phase
}

var transitions = map[domain.Trigger]transition{
	domain.TriggerOpen:     {from: domain.PhaseIdle, to: domain.PhaseOpen},
	domain.TriggerReminder: {from: domain.PhaseOpen, to: domain.PhaseReminded},
	domain.TriggerFinalize: {from: domain.PhaseReminded, to: domain.PhaseIdle},
}

// scheduleDriver advances the weekly lifecycle when calendar triggers fire.
type scheduleDriver struct {
	fireMu sync.Mutex // held for the whole transition, delivery included

	mu    sync.RWMutex
	phase domain.Phase

	store     *roster.Store
	composer  notification.Composer
	deliverer contract.Deliverer
	timeout   time.Duration
	onChange  func()
}

func newScheduleDriver(store *roster.Store, composer notification.Composer, deliverer contract.Deliverer, timeout time.Duration) *scheduleDriver {
	return &scheduleDriver{
		phase:     domain.PhaseIdle,
		store:     store,
		composer:  composer,
		deliverer: deliverer,
		timeout:   timeout,
	}
}

func (d *scheduleDriver) Phase() domain.Phase {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.phase
}

// Restore sets the phase loaded from storage. Unknown phases fall back to idle.
func (d *scheduleDriver) Restore(phase domain.Phase) {
	switch phase {
	case domain.PhaseIdle, domain.PhaseOpen, domain.PhaseReminded:
	default:
		log.Printf("Unknown stored phase %q, starting idle", phase)
		phase = domain.PhaseIdle
	}

	d.mu.Lock()
	d.phase = phase
	d.mu.Unlock()
}

// checkpoint returns the roster state together with the phase it belongs to.
func (d *scheduleDriver) checkpoint() (entity.RosterState, domain.Phase) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.State(), d.phase
}

func (d *scheduleDriver) changed() {
	if d.onChange != nil {
		d.onChange()
	}
}

// Fire applies a trigger. The local transition always completes; a delivery
// failure is reported after the fact and never rolls the roster back.
func (d *scheduleDriver) Fire(ctx context.Context, trigger domain.Trigger) error {
	d.fireMu.Lock()
	defer d.fireMu.Unlock()

	t, ok := transitions[trigger]
	if !ok {
		return fmt.Errorf("unknown trigger %q", trigger)
	}

	current := d.Phase()
	if current != t.from {
		log.Printf("Ignoring %s trigger: schedule is %s, expected %s", trigger, current, t.from)
		return fmt.Errorf("%w: %s while %s", domain.ErrTriggerOutOfSequence, trigger, current)
	}

	// The roster change and the new phase are published together so a
	// checkpoint never pairs a fresh cycle with the previous phase.
	var (
		payload entity.Payload
		send    = true
	)
	d.mu.Lock()
	switch trigger {
	case domain.TriggerOpen:
		payload = d.composer.OpenPrompt(d.store.Snapshot())
	case domain.TriggerReminder:
		payload, send = d.composer.Reminder(d.store.Snapshot())
	case domain.TriggerFinalize:
		payload = d.composer.FinalSchedule(d.store.Finalize())
	}
	d.phase = t.to
	d.mu.Unlock()

	d.changed()
	log.Printf("Schedule moved from %s to %s on %s trigger", current, t.to, trigger)

	if !send {
		log.Println("Every day is full, skipping reminder")
		return nil
	}

	return d.deliver(ctx, payload)
}

func (d *scheduleDriver) deliver(ctx context.Context, payload entity.Payload) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := d.deliverer.Deliver(ctx, entity.Broadcast(), payload); err != nil {
		log.Printf("ERROR delivering %s payload: %v", payload.Kind, err)
		return fmt.Errorf("%w: %s: %w", domain.ErrDeliveryFailure, payload.Kind, err)
	}

	return nil
}
