package services

import (
	"context"
	"testing"
	"time"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/state"
	"skillflow-backend/internal/store"
)

func newTestState(t *testing.T) *state.AppState {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return state.Load(context.Background(), fs)
}

func TestCreateSessionScheduledStartsPending(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(newTestState(t))

	when := time.Now().Add(2 * time.Hour)
	sess, err := svc.Create(ctx, "u-2", models.SessionTypeClassDoubt, "React hooks", &when)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if sess.Status != models.SessionPending {
		t.Errorf("scheduled session should start pending, got %q", sess.Status)
	}
	if sess.Duration != 60 {
		t.Errorf("expected 60 minute session, got %d", sess.Duration)
	}
	if sess.Credits != 2 {
		t.Errorf("unlisted type should cost the default 2, got %d", sess.Credits)
	}
	if len(sess.Goals) != 2 {
		t.Errorf("expected default goals attached")
	}
}

func TestCreateSessionUnscheduledStartsActive(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(newTestState(t))

	sess, err := svc.Create(ctx, "u-3", models.SessionTypeSkillBurst, "Figma", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.Status != models.SessionActive {
		t.Errorf("unscheduled session should start active, got %q", sess.Status)
	}
	if sess.Duration != 15 {
		t.Errorf("skill burst should run 15 minutes, got %d", sess.Duration)
	}
	if sess.Credits != 1 {
		t.Errorf("skill burst should cost 1 credit, got %d", sess.Credits)
	}
}

func TestCreateSessionInsufficientCredits(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	appState.UpdateCurrentUser(ctx, func(u *models.User) { u.Credits = 1 })
	svc := NewSessionService(appState)

	_, err := svc.Create(ctx, "u-2", models.SessionTypeDebug, "X", nil)
	if err != state.ErrInsufficientCredits {
		t.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}
	if appState.CurrentUser().Credits != 1 {
		t.Errorf("refused creation must leave credits unchanged, got %d", appState.CurrentUser().Credits)
	}
	if len(appState.Sessions()) != 0 {
		t.Errorf("refused creation must leave the session list unchanged")
	}
}

func TestCreateSessionUnknownPeer(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	svc := NewSessionService(appState)

	if _, err := svc.Create(ctx, "u-404", models.SessionTypeDebug, "X", nil); err != ErrUnknownPeer {
		t.Fatalf("expected ErrUnknownPeer, got %v", err)
	}
	if appState.CurrentUser().Credits != 12 {
		t.Errorf("unknown peer must not cost credits")
	}
}

func TestCompleteThenDeleteLifecycle(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	svc := NewSessionService(appState)

	sess, err := svc.Create(ctx, "u-2", models.SessionTypeDebug, "Goroutine leak", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !svc.Complete(ctx, sess.ID) {
		t.Fatalf("expected complete to find the session")
	}
	got, _ := appState.SessionByID(sess.ID)
	if got.Status != models.SessionCompleted {
		t.Errorf("expected completed status, got %q", got.Status)
	}

	creditsBefore := appState.CurrentUser().Credits
	if !svc.Delete(ctx, sess.ID) {
		t.Fatalf("expected delete to find the session")
	}
	if appState.CurrentUser().Credits != creditsBefore {
		t.Errorf("delete must not refund credits")
	}
}

func TestPostMessage(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	svc := NewSessionService(appState)

	sess, err := svc.Create(ctx, "u-2", models.SessionTypeDebug, "X", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !svc.PostMessage(ctx, sess.ID, "Can we move to 8pm?") {
		t.Fatalf("expected message to be appended")
	}
	got, _ := appState.SessionByID(sess.ID)
	if len(got.RescheduleRequests) != 1 {
		t.Fatalf("expected one thread entry, got %d", len(got.RescheduleRequests))
	}
	if got.RescheduleRequests[0].From != "You" {
		t.Errorf("thread entries are always from \"You\", got %q", got.RescheduleRequests[0].From)
	}

	// Whitespace-only text is a silent no-op.
	if !svc.PostMessage(ctx, sess.ID, "   \t") {
		t.Fatalf("empty message should be silently ignored, not an error")
	}
	got, _ = appState.SessionByID(sess.ID)
	if len(got.RescheduleRequests) != 1 {
		t.Errorf("empty message must not be appended")
	}
}
