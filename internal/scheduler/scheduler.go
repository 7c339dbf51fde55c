// Package scheduler turns weekly calendar rules into named triggers.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
)

// Firer receives the triggers that came due.
type Firer interface {
	Fire(ctx context.Context, trigger domain.Trigger) error
}

type Scheduler struct {
	rules    []entity.TriggerRule
	location *time.Location
	firer    Firer
	now      func() time.Time

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	done     chan struct{}
}

func New(rules []entity.TriggerRule, location *time.Location, firer Firer) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		rules:    rules,
		location: location,
		firer:    firer,
		now:      time.Now,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	log.Println("Scheduler stopping...")
	close(s.stopChan)
	<-s.done
}

func (s *Scheduler) mainLoop() {
	defer close(s.done)

	after := s.now()
	for {
		nextTime, triggers := s.findNext(after)

		if len(triggers) == 0 {
			log.Println("No valid trigger rules, scheduler idle")
			<-s.stopChan
			return
		}

		log.Printf("Next trigger at %s: %v", nextTime.Format("2006-01-02 15:04:05 MST"), triggers)

		timer := time.NewTimer(nextTime.Sub(s.now()))
		select {
		case <-timer.C:
			s.fire(triggers)
			// Never compute from before the instant that just fired
			after = s.now()
			if after.Before(nextTime) {
				after = nextTime
			}

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// fire runs the due triggers in rule order without blocking the loop.
func (s *Scheduler) fire(triggers []domain.Trigger) {
	go func() {
		for _, trigger := range triggers {
			log.Printf("Firing %s trigger", trigger)
			if err := s.firer.Fire(context.Background(), trigger); err != nil {
				log.Printf("Trigger %s: %v", trigger, err)
			}
		}
	}()
}

// findNext returns the earliest instant strictly after now and every trigger due at it.
func (s *Scheduler) findNext(now time.Time) (time.Time, []domain.Trigger) {
	type ruleNext struct {
		order    int
		trigger  domain.Trigger
		nextTime time.Time
	}

	var allNext []ruleNext
	for i, rule := range s.rules {
		nextTime := calculateNext(rule, now, s.location)
		if !nextTime.IsZero() {
			allNext = append(allNext, ruleNext{order: i, trigger: rule.Trigger, nextTime: nextTime})
		}
	}

	if len(allNext) == 0 {
		return time.Time{}, nil
	}

	sort.SliceStable(allNext, func(i, j int) bool {
		return allNext[i].nextTime.Before(allNext[j].nextTime)
	})

	earliestTime := allNext[0].nextTime

	var triggers []domain.Trigger
	for _, rn := range allNext {
		if !rn.nextTime.Equal(earliestTime) {
			break
		}
		triggers = append(triggers, rn.trigger)
	}

	return earliestTime, triggers
}

// calculateNext returns the next occurrence of rule strictly after now, in loc.
func calculateNext(rule entity.TriggerRule, now time.Time, loc *time.Location) time.Time {
	clock, err := time.Parse("15:04", rule.NotificationTime)
	if err != nil {
		log.Printf("Invalid time %q for %s trigger", rule.NotificationTime, rule.Trigger)
		return time.Time{}
	}

	if _, ok := domain.WeekdayNames[rule.Weekday]; !ok {
		log.Printf("Invalid weekday %d for %s trigger", rule.Weekday, rule.Trigger)
		return time.Time{}
	}

	local := now.In(loc)
	for i := 0; i <= 7; i++ {
		candidate := time.Date(local.Year(), local.Month(), local.Day()+i, clock.Hour(), clock.Minute(), 0, 0, loc)
		if isoWeekday(candidate) == rule.Weekday && candidate.After(now) {
			return candidate
		}
	}

	return time.Time{}
}

func isoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday = 0 in Go, 7 in ISO 8601
		weekday = domain.Sunday
	}
	return weekday
}

// ParseRule parses a weekly rule like "fri 09:00" or "5 9:00".
func ParseRule(trigger domain.Trigger, value string) (entity.TriggerRule, error) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return entity.TriggerRule{}, fmt.Errorf("invalid %s schedule %q: expected \"<weekday> <HH:MM>\"", trigger, value)
	}

	weekday, ok := domain.ParseWeekday(fields[0])
	if !ok {
		return entity.TriggerRule{}, fmt.Errorf("invalid %s schedule %q: unknown weekday %q", trigger, value, fields[0])
	}

	clock, err := time.Parse("15:04", fields[1])
	if err != nil {
		return entity.TriggerRule{}, fmt.Errorf("invalid %s schedule %q: time must be HH:MM", trigger, value)
	}

	return entity.TriggerRule{
		Trigger:          trigger,
		Weekday:          weekday,
		NotificationTime: clock.Format("15:04"),
	}, nil
}
