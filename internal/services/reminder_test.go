package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"skillflow-backend/internal/models"
)

type capturePublisher struct {
	messages []models.WSMessage
}

func (p *capturePublisher) Broadcast(msg models.WSMessage) {
	p.messages = append(p.messages, msg)
}

func TestScanFiresInsideWindow(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	pub := &capturePublisher{}
	sched := NewReminderScheduler(appState, pub, 30*time.Second, 15*time.Minute+30*time.Second)

	now := time.Now()
	when := now.Add(10 * time.Minute)
	sessions := NewSessionService(appState)
	if _, err := sessions.Create(ctx, "u-2", models.SessionTypeDebug, "React state", &when); err != nil {
		t.Fatalf("Create: %v", err)
	}

	sched.scan(now)

	notifs := appState.Notifications()
	if len(notifs) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifs))
	}
	if !strings.Contains(notifs[0].Message, "10 minutes") {
		t.Errorf("message should quote the rounded minute count, got %q", notifs[0].Message)
	}
	if notifs[0].Type != models.NotificationReminder {
		t.Errorf("expected reminder type, got %q", notifs[0].Type)
	}
	if len(pub.messages) != 1 {
		t.Errorf("expected the notification broadcast once, got %d", len(pub.messages))
	}

	// A later scan inside the same window must not duplicate.
	sched.scan(now.Add(time.Second))
	if len(appState.Notifications()) != 1 {
		t.Errorf("second scan must not raise a duplicate")
	}
	if len(pub.messages) != 1 {
		t.Errorf("second scan must not rebroadcast")
	}
}

func TestScanSkipsEventsOutsideWindow(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	sched := NewReminderScheduler(appState, nil, 30*time.Second, 15*time.Minute+30*time.Second)
	sessions := NewSessionService(appState)

	now := time.Now()
	for _, when := range []time.Time{
		now.Add(-5 * time.Minute), // already started
		now,                       // starting this instant
		now.Add(20 * time.Minute), // too far out
	} {
		w := when
		if _, err := sessions.Create(ctx, "u-2", models.SessionTypeSkillBurst, "Figma", &w); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	sched.scan(now)
	if got := len(appState.Notifications()); got != 0 {
		t.Errorf("no event is inside the window, got %d notifications", got)
	}
}

func TestScanWindowBoundary(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	lookahead := 15*time.Minute + 30*time.Second
	sched := NewReminderScheduler(appState, nil, 30*time.Second, lookahead)
	sessions := NewSessionService(appState)

	now := time.Now()
	atEdge := now.Add(lookahead)
	if _, err := sessions.Create(ctx, "u-2", models.SessionTypeDebug, "Edge", &atEdge); err != nil {
		t.Fatalf("Create: %v", err)
	}

	sched.scan(now)
	if got := len(appState.Notifications()); got != 1 {
		t.Errorf("an event exactly at the lookahead edge should fire, got %d", got)
	}
}

func TestRescheduleReArmsExactlyOnce(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	sched := NewReminderScheduler(appState, nil, 30*time.Second, 15*time.Minute+30*time.Second)
	sessions := NewSessionService(appState)

	now := time.Now()
	when := now.Add(10 * time.Minute)
	sess, err := sessions.Create(ctx, "u-2", models.SessionTypeDebug, "Rescheduled", &when)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sched.scan(now)
	if got := len(appState.Notifications()); got != 1 {
		t.Fatalf("expected one notification before the edit, got %d", got)
	}

	// Editing the schedule clears the dedup entry so one more reminder
	// may fire for the new time.
	newTime := now.Add(5 * time.Minute)
	edited := sess
	edited.ScheduledTime = &newTime
	if !sessions.Edit(ctx, edited) {
		t.Fatalf("Edit: session not found")
	}

	sched.scan(now)
	sched.scan(now.Add(time.Second))
	if got := len(appState.Notifications()); got != 2 {
		t.Errorf("edited session should refire exactly once, got %d notifications", got)
	}
}

func TestScanCoversMeetings(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	sched := NewReminderScheduler(appState, nil, 30*time.Second, 15*time.Minute+30*time.Second)

	now := time.Now()
	appState.AddMeeting(ctx, models.Meeting{
		ID:          "meet-1",
		Topic:       "Design review",
		ScheduledAt: now.Add(3 * time.Minute),
		Type:        models.MeetingTypeStudy,
	})

	sched.scan(now)
	notifs := appState.Notifications()
	if len(notifs) != 1 {
		t.Fatalf("expected the meeting to fire a reminder, got %d", len(notifs))
	}
	if notifs[0].EventID != "meet-1" {
		t.Errorf("expected the meeting id on the notification, got %q", notifs[0].EventID)
	}
}

func TestStartStop(t *testing.T) {
	appState := newTestState(t)
	sched := NewReminderScheduler(appState, nil, time.Hour, 15*time.Minute+30*time.Second)
	sched.Start()
	sched.Stop()
	sched.Stop() // idempotent
}
