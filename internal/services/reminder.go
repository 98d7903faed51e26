package services

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/state"
)

// NotificationPublisher pushes freshly raised notifications to connected
// clients.
type NotificationPublisher interface {
	Broadcast(msg models.WSMessage)
}

// ReminderScheduler scans scheduled sessions and meetings on a fixed
// interval and raises at most one reminder notification per event id for
// its lifetime. The dedup set lives in AppState and is updated atomically
// with the notification insert.
type ReminderScheduler struct {
	state     *state.AppState
	publisher NotificationPublisher
	interval  time.Duration
	lookahead time.Duration
	stopChan  chan struct{}
}

func NewReminderScheduler(appState *state.AppState, publisher NotificationPublisher, interval, lookahead time.Duration) *ReminderScheduler {
	return &ReminderScheduler{
		state:     appState,
		publisher: publisher,
		interval:  interval,
		lookahead: lookahead,
		stopChan:  make(chan struct{}),
	}
}

func (s *ReminderScheduler) Start() {
	go s.loop()
	log.Printf("Reminder scheduler started (interval %s, lookahead %s)", s.interval, s.lookahead)
}

func (s *ReminderScheduler) Stop() {
	select {
	case <-s.stopChan:
		return
	default:
		close(s.stopChan)
	}
}

func (s *ReminderScheduler) loop() {
	// Scan on startup as well as by interval.
	s.scan(time.Now())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case now := <-ticker.C:
			s.scan(now)
		}
	}
}

// scan walks every scheduled event and fires reminders for the ones inside
// the lookahead window.
func (s *ReminderScheduler) scan(now time.Time) {
	for _, sess := range s.state.Sessions() {
		if sess.ScheduledTime != nil {
			s.processEvent(*sess.ScheduledTime, sess.ID, sess.Skill, now)
		}
	}
	for _, meeting := range s.state.Meetings() {
		s.processEvent(meeting.ScheduledAt, meeting.ID, meeting.Topic, now)
	}
}

func (s *ReminderScheduler) processEvent(eventTime time.Time, eventID, topic string, now time.Time) {
	if s.state.Notified(eventID) {
		return
	}
	until := eventTime.Sub(now)
	if !withinWindow(until, s.lookahead) {
		return
	}

	notif := models.Notification{
		ID:        fmt.Sprintf("notif-%s", uuid.New().String()),
		Title:     "Upcoming Session",
		Message:   reminderMessage(topic, until),
		Type:      models.NotificationReminder,
		Timestamp: now,
		Read:      false,
		EventID:   eventID,
	}

	// NotifyOnce is the authoritative duplicate gate; the Notified check
	// above only saves building the record.
	if !s.state.NotifyOnce(eventID, notif) {
		return
	}

	log.Printf("reminder scan: raised reminder for %q (%s)", topic, eventID)
	if s.publisher != nil {
		s.publisher.Broadcast(models.WSMessage{Type: "notification", Payload: notif})
	}
}

// withinWindow reports whether an event this far in the future should fire.
// Events already started or past never fire, even on the first scan after
// creation.
func withinWindow(until, lookahead time.Duration) bool {
	return until > 0 && until <= lookahead
}

// reminderMessage embeds the rounded minute count. The email claim is copy
// carried over from the product; no email is sent.
func reminderMessage(topic string, until time.Duration) string {
	minutes := int(math.Round(until.Minutes()))
	return fmt.Sprintf("%q starts in %d minutes! A reminder email has also been sent to your registered address.", topic, minutes)
}
