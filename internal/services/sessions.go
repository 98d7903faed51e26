package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/state"
)

var ErrUnknownPeer = errors.New("unknown peer")

// SessionService owns the session lifecycle: creation with credit debit,
// completion, deletion, edits, and the per-session message thread.
type SessionService struct {
	state *state.AppState
	now   func() time.Time
}

func NewSessionService(appState *state.AppState) *SessionService {
	return &SessionService{state: appState, now: time.Now}
}

// Create builds and stores a new session against the given peer. The credit
// cost is looked up from the per-type table and debited atomically with the
// insert; state.ErrInsufficientCredits is returned with nothing mutated when
// the current user cannot afford it. A scheduled session starts pending,
// an unscheduled one starts active.
func (s *SessionService) Create(ctx context.Context, peerID string, sessionType models.SessionType, skill string, scheduledTime *time.Time) (models.Session, error) {
	peer, ok := s.state.PeerByID(peerID)
	if !ok {
		return models.Session{}, ErrUnknownPeer
	}

	status := models.SessionActive
	if scheduledTime != nil {
		status = models.SessionPending
	}

	sess := models.Session{
		ID:                 fmt.Sprintf("s-%s", uuid.New().String()),
		MentorID:           peer.ID,
		LearnerID:          s.state.CurrentUser().ID,
		Type:               sessionType,
		Skill:              skill,
		Duration:           models.SessionDuration(sessionType),
		Credits:            models.CreditCost(sessionType),
		Status:             status,
		Goals:              models.DefaultSessionGoals(),
		CreatedAt:          s.now(),
		ScheduledTime:      scheduledTime,
		RescheduleRequests: []models.RescheduleNote{},
	}

	if err := s.state.CreateSession(ctx, sess); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// Complete marks the session completed; unknown ids are a no-op. Credits
// spent on the session stay spent.
func (s *SessionService) Complete(ctx context.Context, id string) bool {
	return s.state.CompleteSession(ctx, id)
}

// Delete removes the session record outright. Previously raised reminders
// stay in the notification list and credits are not refunded.
func (s *SessionService) Delete(ctx context.Context, id string) bool {
	return s.state.DeleteSession(ctx, id)
}

// Edit replaces the full record and re-arms the session's reminder
// eligibility, which matters whenever the scheduled time changed.
func (s *SessionService) Edit(ctx context.Context, sess models.Session) bool {
	return s.state.ReplaceSession(ctx, sess)
}

// PostMessage appends a note to the session's reschedule/chat thread. Text
// that trims to empty is silently ignored.
func (s *SessionService) PostMessage(ctx context.Context, id, text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	return s.state.AppendSessionNote(ctx, id, models.RescheduleNote{
		From:      "You",
		Note:      text,
		Timestamp: s.now(),
	})
}
