package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/state"
)

var ErrEmptyTopic = errors.New("meeting topic is empty")

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// MeetingService creates and removes ad-hoc collaboration rooms.
type MeetingService struct {
	state   *state.AppState
	baseURL string
	now     func() time.Time
}

func NewMeetingService(appState *state.AppState, baseURL string) *MeetingService {
	return &MeetingService{state: appState, baseURL: baseURL, now: time.Now}
}

// Create opens a new study room with the current user as sole participant.
// A whitespace-only topic is refused with ErrEmptyTopic and nothing changes.
func (s *MeetingService) Create(ctx context.Context, topic string) (models.Meeting, error) {
	if strings.TrimSpace(topic) == "" {
		return models.Meeting{}, ErrEmptyTopic
	}

	meeting := models.Meeting{
		ID:           fmt.Sprintf("m-%s", uuid.New().String()),
		Topic:        topic,
		Participants: []string{s.state.CurrentUser().ID},
		ScheduledAt:  s.now(),
		Link:         s.baseURL + shareToken(7),
		Type:         models.MeetingTypeStudy,
	}

	s.state.AddMeeting(ctx, meeting)
	return meeting, nil
}

func (s *MeetingService) Delete(ctx context.Context, id string) bool {
	return s.state.DeleteMeeting(ctx, id)
}

// shareToken returns an opaque random token. Uniqueness is probabilistic,
// not guaranteed.
func shareToken(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(b)
}
