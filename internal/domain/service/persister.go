package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/roster"
)

// persister writes the roster to the database in the background. Changes are
// coalesced: a burst of claims results in a single write of the latest state.
type persister struct {
	dm     contract.DataManager
	store  *roster.Store
	driver *scheduleDriver
	now    func() time.Time

	changed  chan struct{}
	stopChan chan struct{}
	done     chan struct{}

	mu      sync.Mutex
	running bool
}

func newPersister(dm contract.DataManager) *persister {
	return &persister{
		dm:       dm,
		now:      time.Now,
		changed:  make(chan struct{}, 1),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (p *persister) attach(store *roster.Store, driver *scheduleDriver) {
	p.store = store
	p.driver = driver
}

// NotifyChange schedules a write. It never blocks.
func (p *persister) NotifyChange() {
	select {
	case p.changed <- struct{}{}:
	default:
		// A write is already pending and will pick up this change
	}
}

// Load restores the stored cycle into the roster and the schedule.
// When nothing is stored the current empty cycle is written.
func (p *persister) Load(ctx context.Context) error {
	cycle, err := p.dm.Cycle().GetCurrent()
	if err != nil {
		return fmt.Errorf("failed to load current cycle: %w", err)
	}

	if cycle == nil {
		log.Printf("No stored cycle found, starting cycle %s", p.store.CycleID())
		return p.Flush(ctx)
	}

	signups, err := p.dm.Signup().ListByCycle(cycle.ID)
	if err != nil {
		return fmt.Errorf("failed to load signups: %w", err)
	}

	dropped := p.store.Restore(entity.RosterState{CycleID: cycle.ID, Signups: signups})
	for _, signup := range dropped {
		log.Printf("Dropping signup of %s on unconfigured day %s", signup.UserID, signup.Day)
	}
	p.driver.Restore(cycle.Phase)

	log.Printf("Restored cycle %s in phase %s with %d signups", cycle.ID, p.driver.Phase(), len(signups)-len(dropped))

	if len(dropped) > 0 || cycle.Phase != p.driver.Phase() {
		return p.Flush(ctx)
	}
	return nil
}

// Flush writes the full current state in one transaction.
func (p *persister) Flush(ctx context.Context) error {
	state, phase := p.driver.checkpoint()
	now := p.now().UTC()

	err := p.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		cycle := &entity.Cycle{
			ID:        state.CycleID,
			Phase:     phase,
			StartedAt: now,
			UpdatedAt: now,
		}
		if err := dm.Cycle().Save(cycle); err != nil {
			return err
		}
		if err := dm.Cycle().DeleteExcept(state.CycleID); err != nil {
			return err
		}
		return dm.Signup().ReplaceForCycle(state.CycleID, state.Signups)
	})
	if err != nil {
		return fmt.Errorf("failed to persist roster: %w", err)
	}

	return nil
}

func (p *persister) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true
	go p.mainLoop()
}

// Stop waits for the pending write and flushes once more.
func (p *persister) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	close(p.stopChan)
	<-p.done

	if err := p.Flush(context.Background()); err != nil {
		log.Printf("ERROR persisting roster on shutdown: %v", err)
	}
}

func (p *persister) mainLoop() {
	defer close(p.done)
	for {
		select {
		case <-p.changed:
			if err := p.Flush(context.Background()); err != nil {
				log.Printf("ERROR %v", err)
			}
		case <-p.stopChan:
			return
		}
	}
}

