package notify

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/infrastructure/journal"
)

// Trigger names owned by the scheduler.
const (
	TriggerMorning = "morning"
	TriggerEvening = "evening"
)

const fireTimeout = 30 * time.Second

// Summarizer produces the digest text for a trigger.
type Summarizer interface {
	TimeSpecificSummary(ctx context.Context, tod TimeOfDay) string
}

// Messenger delivers digests and error notifications.
type Messenger interface {
	SendTaskSummary(summary string, tod TimeOfDay) bool
	SendErrorNotification(errText string) bool
}

// SchedulerStatus is the live snapshot served by the status endpoint.
type SchedulerStatus struct {
	Enabled     bool     `json:"enabled"`
	ActiveJobs  []string `json:"active_jobs"`
	Timezone    string   `json:"timezone"`
	MorningCron string   `json:"morning_cron"`
	EveningCron string   `json:"evening_cron"`
}

// Scheduler owns the two named recurring triggers. It is an explicit service
// object: the trigger-name → entry mapping lives here, not in package state.
type Scheduler struct {
	composer  Summarizer
	messenger Messenger
	journal   *journal.Store
	loc       *time.Location
	logger    *zap.Logger

	morningSpec string
	eveningSpec string

	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]cron.EntryID
	enabled bool
}

// NewScheduler builds the scheduler and starts its cron runner. No triggers
// are armed until Start or SetEnabled(true) is called.
func NewScheduler(composer Summarizer, messenger Messenger, jnl *journal.Store, loc *time.Location, morningSpec, eveningSpec string, logger *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Scheduler{
		composer:    composer,
		messenger:   messenger,
		journal:     jnl,
		loc:         loc,
		logger:      logger,
		morningSpec: morningSpec,
		eveningSpec: eveningSpec,
		cron:        cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		entries:     make(map[string]cron.EntryID),
	}
	s.cron.Start()
	return s
}

// Start arms both triggers, replacing any active set. Calling it while
// running never double-registers a trigger.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked()
}

// Stop disarms all triggers. Safe to call at any time; an in-flight firing
// runs to completion.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// SetEnabled toggles the run flag and arms or disarms the triggers
// accordingly. The flag gates automatic firing only; Fire stays available.
func (s *Scheduler) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if enabled {
		s.startLocked()
	} else {
		s.stopLocked()
	}
	s.enabled = enabled
}

// Status reports the live trigger state.
func (s *Scheduler) Status() SchedulerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	return SchedulerStatus{
		Enabled:     s.enabled,
		ActiveJobs:  names,
		Timezone:    s.loc.String(),
		MorningCron: s.morningSpec,
		EveningCron: s.eveningSpec,
	}
}

// Shutdown disarms all triggers and stops the cron runner, waiting for any
// in-flight firing to finish.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.Stop()
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Fire runs one summary-and-send cycle for the given variant. It is used by
// the scheduled triggers and by the manual test endpoint; failures are
// reported as false, never as an error.
func (s *Scheduler) Fire(ctx context.Context, tod TimeOfDay) bool {
	summary := s.composer.TimeSpecificSummary(ctx, tod)

	ok := s.messenger.SendTaskSummary(summary, tod)
	if !ok {
		s.logger.Error("digest delivery failed", zap.String("trigger", tod.String()))
		// Best effort: a failure here is logged and swallowed, never retried.
		if !s.messenger.SendErrorNotification("scheduled " + tod.String() + " digest failed to send") {
			s.logger.Warn("error notification delivery failed", zap.String("trigger", tod.String()))
		}
	}

	s.record(tod.String(), ok)
	return ok
}

func (s *Scheduler) startLocked() {
	s.stopLocked()
	s.arm(TriggerMorning, s.morningSpec, Morning)
	s.arm(TriggerEvening, s.eveningSpec, Evening)
}

func (s *Scheduler) stopLocked() {
	for name, id := range s.entries {
		s.cron.Remove(id)
		delete(s.entries, name)
	}
}

func (s *Scheduler) arm(name, spec string, tod TimeOfDay) {
	id, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), fireTimeout)
		defer cancel()
		s.Fire(ctx, tod)
	})
	if err != nil {
		s.logger.Error("trigger registration failed",
			zap.String("trigger", name),
			zap.String("spec", spec),
			zap.Error(err))
		return
	}
	s.entries[name] = id
	s.logger.Info("trigger armed", zap.String("trigger", name), zap.String("spec", spec))
}

func (s *Scheduler) record(trigger string, ok bool) {
	if s.journal == nil {
		return
	}
	entry := journal.Entry{Trigger: trigger, OK: ok}
	if !ok {
		entry.Error = "delivery failed"
	}
	if err := s.journal.Append(entry); err != nil {
		s.logger.Warn("journal append failed", zap.Error(err))
	}
}
