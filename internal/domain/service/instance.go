package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/notification"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/roster"
)

// Options configures the roster and the wording of notifications.
type Options struct {
	Days            []domain.Day
	Capacity        roster.Capacity
	ActivityName    string
	MeetingInfo     string
	DeliveryTimeout time.Duration
}

type Instance struct {
	Store     *roster.Store
	Signup    *signupService
	Driver    *scheduleDriver
	Persister *persister
}

func NewInstance(opts Options, dm contract.DataManager, deliverer contract.Deliverer) (*Instance, error) {
	persister := newPersister(dm)

	store, err := roster.New(opts.Days, opts.Capacity, roster.WithChangeHook(persister.NotifyChange))
	if err != nil {
		return nil, fmt.Errorf("failed to create roster: %w", err)
	}

	composer := notification.New(opts.ActivityName, opts.MeetingInfo)

	driver := newScheduleDriver(store, composer, deliverer, opts.DeliveryTimeout)
	driver.onChange = persister.NotifyChange
	persister.attach(store, driver)

	return &Instance{
		Store:     store,
		Signup:    newSignup(store, composer, driver.Phase),
		Driver:    driver,
		Persister: persister,
	}, nil
}
