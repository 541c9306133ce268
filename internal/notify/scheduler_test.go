package notify

import (
	"context"
	"reflect"
	"testing"
	"time"
)

type fakeSummarizer struct {
	text string
}

func (f *fakeSummarizer) TimeSpecificSummary(ctx context.Context, tod TimeOfDay) string {
	return f.text
}

type fakeMessenger struct {
	summaryOK bool
	errorOK   bool

	summaries []string
	errors    []string
}

func (f *fakeMessenger) SendTaskSummary(summary string, tod TimeOfDay) bool {
	f.summaries = append(f.summaries, summary)
	return f.summaryOK
}

func (f *fakeMessenger) SendErrorNotification(errText string) bool {
	f.errors = append(f.errors, errText)
	return f.errorOK
}

func newTestScheduler(m *fakeMessenger) *Scheduler {
	return NewScheduler(
		&fakeSummarizer{text: "digest"},
		m,
		nil,
		time.UTC,
		"0 0 9 * * *",
		"0 0 20 * * *",
		nil,
	)
}

func TestSchedulerStartIdempotent(t *testing.T) {
	s := newTestScheduler(&fakeMessenger{summaryOK: true})
	defer s.Shutdown(context.Background())

	s.Start()
	s.Start()
	s.Start()

	status := s.Status()
	want := []string{TriggerEvening, TriggerMorning}
	if !reflect.DeepEqual(status.ActiveJobs, want) {
		t.Fatalf("active jobs = %v, want %v", status.ActiveJobs, want)
	}
}

func TestSchedulerStopDisarmsAll(t *testing.T) {
	s := newTestScheduler(&fakeMessenger{summaryOK: true})
	defer s.Shutdown(context.Background())

	s.Start()
	s.Stop()
	s.Stop() // second stop is a no-op

	if jobs := s.Status().ActiveJobs; len(jobs) != 0 {
		t.Fatalf("expected no active jobs after stop, got %v", jobs)
	}
}

func TestSchedulerSetEnabled(t *testing.T) {
	s := newTestScheduler(&fakeMessenger{summaryOK: true})
	defer s.Shutdown(context.Background())

	s.SetEnabled(true)
	status := s.Status()
	if !status.Enabled {
		t.Fatal("expected enabled after SetEnabled(true)")
	}
	if want := []string{TriggerEvening, TriggerMorning}; !reflect.DeepEqual(status.ActiveJobs, want) {
		t.Fatalf("active jobs = %v, want %v", status.ActiveJobs, want)
	}

	s.SetEnabled(false)
	status = s.Status()
	if status.Enabled || len(status.ActiveJobs) != 0 {
		t.Fatalf("expected disabled with no jobs, got %+v", status)
	}

	// Re-enabling restores exactly the same trigger set.
	s.SetEnabled(true)
	if want := []string{TriggerEvening, TriggerMorning}; !reflect.DeepEqual(s.Status().ActiveJobs, want) {
		t.Fatalf("active jobs after re-enable = %v, want %v", s.Status().ActiveJobs, want)
	}
}

func TestSchedulerStatusReportsConfig(t *testing.T) {
	s := newTestScheduler(&fakeMessenger{summaryOK: true})
	defer s.Shutdown(context.Background())

	status := s.Status()
	if status.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC", status.Timezone)
	}
	if status.MorningCron != "0 0 9 * * *" || status.EveningCron != "0 0 20 * * *" {
		t.Errorf("cron specs not reported: %+v", status)
	}
}

func TestSchedulerFireSuccess(t *testing.T) {
	m := &fakeMessenger{summaryOK: true}
	s := newTestScheduler(m)
	defer s.Shutdown(context.Background())

	if !s.Fire(context.Background(), Morning) {
		t.Fatal("expected Fire to report success")
	}
	if len(m.summaries) != 1 || m.summaries[0] != "digest" {
		t.Fatalf("unexpected summaries: %v", m.summaries)
	}
	if len(m.errors) != 0 {
		t.Fatalf("no error notification expected on success, got %v", m.errors)
	}
}

func TestSchedulerFireFailureSendsErrorNotification(t *testing.T) {
	m := &fakeMessenger{summaryOK: false, errorOK: true}
	s := newTestScheduler(m)
	defer s.Shutdown(context.Background())

	if s.Fire(context.Background(), Evening) {
		t.Fatal("expected Fire to report failure")
	}
	if len(m.errors) != 1 {
		t.Fatalf("expected one error notification, got %v", m.errors)
	}
}

func TestSchedulerFireErrorNotificationFailureSwallowed(t *testing.T) {
	m := &fakeMessenger{summaryOK: false, errorOK: false}
	s := newTestScheduler(m)
	defer s.Shutdown(context.Background())

	// Both the digest and the error notification fail; Fire must still
	// return normally.
	if s.Fire(context.Background(), Morning) {
		t.Fatal("expected Fire to report failure")
	}
	if len(m.errors) != 1 {
		t.Fatalf("error notification should be attempted exactly once, got %d", len(m.errors))
	}
}
