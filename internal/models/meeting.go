package models

import "time"

type MeetingType string

const (
	MeetingTypeStudy MeetingType = "study"
	MeetingTypeClass MeetingType = "class"
)

// Meeting is an ad-hoc collaboration room. The share link embeds a random
// opaque token; uniqueness is probabilistic, not guaranteed.
type Meeting struct {
	ID           string      `json:"id"`
	Topic        string      `json:"topic"`
	Participants []string    `json:"participants"` // user IDs
	ScheduledAt  time.Time   `json:"scheduledAt"`
	Link         string      `json:"link"`
	Type         MeetingType `json:"type"`
}
