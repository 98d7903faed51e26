// Package state owns every piece of mutable application data. All mutation
// goes through AppState under one lock, and every mutation mirrors a full
// snapshot of the affected document to the store. Nothing else writes the
// store.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/store"
)

// Document keys, fixed since the original browser-storage layout.
const (
	UserDocumentKey     = "sf_user"
	SessionsDocumentKey = "sf_sessions"
	MeetingsDocumentKey = "sf_meetings"
)

var ErrInsufficientCredits = errors.New("insufficient skill credits")

type AppState struct {
	mu    sync.Mutex
	store store.DocumentStore

	currentUser models.User
	peers       []models.User

	sessions []models.Session
	meetings []models.Meeting

	// Volatile: notifications and the reminder dedup set never survive a
	// restart.
	notifications []models.Notification
	notified      map[string]struct{}
}

// Load builds the state from the store. Absent or unparseable documents fall
// back to seed or empty values so a corrupt store never prevents startup.
func Load(ctx context.Context, st store.DocumentStore) *AppState {
	s := &AppState{
		store:    st,
		peers:    models.SeedPeers(),
		notified: make(map[string]struct{}),
	}

	s.currentUser = models.SeedCurrentUser()
	if data, err := st.Get(ctx, UserDocumentKey); err == nil {
		var u models.User
		if jsonErr := json.Unmarshal(data, &u); jsonErr != nil {
			log.Printf("state: unreadable %s document, using seed profile: %v", UserDocumentKey, jsonErr)
		} else {
			s.currentUser = u
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("state: failed to load %s, using seed profile: %v", UserDocumentKey, err)
	}

	s.sessions = []models.Session{}
	if data, err := st.Get(ctx, SessionsDocumentKey); err == nil {
		var sessions []models.Session
		if jsonErr := json.Unmarshal(data, &sessions); jsonErr != nil {
			log.Printf("state: unreadable %s document, starting empty: %v", SessionsDocumentKey, jsonErr)
		} else {
			s.sessions = sessions
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("state: failed to load %s, starting empty: %v", SessionsDocumentKey, err)
	}

	s.meetings = []models.Meeting{}
	if data, err := st.Get(ctx, MeetingsDocumentKey); err == nil {
		var meetings []models.Meeting
		if jsonErr := json.Unmarshal(data, &meetings); jsonErr != nil {
			log.Printf("state: unreadable %s document, starting empty: %v", MeetingsDocumentKey, jsonErr)
		} else {
			s.meetings = meetings
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("state: failed to load %s, starting empty: %v", MeetingsDocumentKey, err)
	}

	return s
}

// persist mirrors one document. In-memory state stays authoritative; a
// failed write is logged and the action continues, as the original did with
// browser storage.
func (s *AppState) persist(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("state: failed to encode %s: %v", key, err)
		return
	}
	if err := s.store.Put(ctx, key, data); err != nil {
		log.Printf("state: failed to persist %s: %v", key, err)
	}
}

// ── Current user & peers ──

func (s *AppState) CurrentUser() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

func (s *AppState) Peers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	peers := make([]models.User, len(s.peers))
	copy(peers, s.peers)
	return peers
}

func (s *AppState) PeerByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.peers {
		if p.ID == id {
			return p, true
		}
	}
	return models.User{}, false
}

// UpdateCurrentUser applies fn to the current user and persists the profile
// document.
func (s *AppState) UpdateCurrentUser(ctx context.Context, fn func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.currentUser)
	s.persist(ctx, UserDocumentKey, s.currentUser)
}

// ── Sessions ──

func (s *AppState) Sessions() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessions := make([]models.Session, len(s.sessions))
	copy(sessions, s.sessions)
	return sessions
}

func (s *AppState) SessionByID(id string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return models.Session{}, false
}

// CreateSession debits the session's credit cost from the current user and
// prepends the session, or refuses with ErrInsufficientCredits leaving
// everything untouched. The reminder dedup entry for the new id is cleared
// unconditionally.
func (s *AppState) CreateSession(ctx context.Context, sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser.Credits < sess.Credits {
		return ErrInsufficientCredits
	}

	s.currentUser.Credits -= sess.Credits
	s.sessions = append([]models.Session{sess}, s.sessions...)
	delete(s.notified, sess.ID)

	s.persist(ctx, SessionsDocumentKey, s.sessions)
	s.persist(ctx, UserDocumentKey, s.currentUser)
	return nil
}

// CompleteSession marks the session completed. Credits are never refunded.
// Returns false when the id is unknown.
func (s *AppState) CompleteSession(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			s.sessions[i].Status = models.SessionCompleted
			s.persist(ctx, SessionsDocumentKey, s.sessions)
			return true
		}
	}
	return false
}

// DeleteSession removes the record entirely. It does not refund credits and
// does not revoke already-raised notifications.
func (s *AppState) DeleteSession(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			s.persist(ctx, SessionsDocumentKey, s.sessions)
			return true
		}
	}
	return false
}

// ReplaceSession swaps in the full updated record and clears the reminder
// dedup entry so an edited schedule can fire one more reminder.
func (s *AppState) ReplaceSession(ctx context.Context, sess models.Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID == sess.ID {
			s.sessions[i] = sess
			delete(s.notified, sess.ID)
			s.persist(ctx, SessionsDocumentKey, s.sessions)
			return true
		}
	}
	return false
}

func (s *AppState) AppendSessionNote(ctx context.Context, id string, note models.RescheduleNote) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			s.sessions[i].RescheduleRequests = append(s.sessions[i].RescheduleRequests, note)
			s.persist(ctx, SessionsDocumentKey, s.sessions)
			return true
		}
	}
	return false
}

// ── Meetings ──

func (s *AppState) Meetings() []models.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	meetings := make([]models.Meeting, len(s.meetings))
	copy(meetings, s.meetings)
	return meetings
}

func (s *AppState) AddMeeting(ctx context.Context, m models.Meeting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings = append([]models.Meeting{m}, s.meetings...)
	s.persist(ctx, MeetingsDocumentKey, s.meetings)
}

func (s *AppState) DeleteMeeting(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.meetings {
		if s.meetings[i].ID == id {
			s.meetings = append(s.meetings[:i], s.meetings[i+1:]...)
			s.persist(ctx, MeetingsDocumentKey, s.meetings)
			return true
		}
	}
	return false
}

// ── Notifications & reminder dedup ──

func (s *AppState) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	notifs := make([]models.Notification, len(s.notifications))
	copy(notifs, s.notifications)
	return notifs
}

func (s *AppState) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// Notified reports whether a reminder has already fired for the event id.
func (s *AppState) Notified(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.notified[eventID]
	return ok
}

// NotifyOnce prepends the notification and records the event id in the
// dedup set in one step, so an event can never fire twice even if scans
// overlap. Returns false without inserting when the id has already fired.
func (s *AppState) NotifyOnce(eventID string, n models.Notification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notified[eventID]; ok {
		return false
	}
	s.notified[eventID] = struct{}{}
	s.notifications = append([]models.Notification{n}, s.notifications...)
	return true
}

// MarkNotificationRead toggles a single record. The dedup set is untouched:
// a fired reminder stays fired until its event's schedule is edited.
func (s *AppState) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return true
		}
	}
	return false
}

func (s *AppState) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}
