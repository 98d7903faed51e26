package models

import "time"

type SessionType string

const (
	SessionTypeDebug         SessionType = "Debug Session"
	SessionTypeMockInterview SessionType = "Mock Interview"
	SessionTypeResumeReview  SessionType = "Resume Review"
	SessionTypeProjectSprint SessionType = "Mini Project Sprint"
	SessionTypeSkillBurst    SessionType = "15-Min Skill Burst"
	SessionTypeClassDoubt    SessionType = "Doubt Clarifying Class"
	SessionTypeClassTeach    SessionType = "Teaching Class"
	SessionTypeStudyGroup    SessionType = "Combined Study"
)

type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// skillCreditValues is the per-type cost table. Types not listed here cost
// defaultCreditCost.
var skillCreditValues = map[SessionType]int{
	SessionTypeSkillBurst:    1,
	SessionTypeDebug:         2,
	SessionTypeMockInterview: 3,
	SessionTypeResumeReview:  2,
	SessionTypeProjectSprint: 5,
}

const defaultCreditCost = 2

// CreditCost returns the credit price of creating a session of the given type.
func CreditCost(t SessionType) int {
	if cost, ok := skillCreditValues[t]; ok {
		return cost
	}
	return defaultCreditCost
}

// SessionDuration returns the length of a session in minutes. Skill bursts
// run 15 minutes; everything else runs an hour.
func SessionDuration(t SessionType) int {
	if t == SessionTypeSkillBurst {
		return 15
	}
	return 60
}

// DefaultSessionGoals is attached to every newly created session.
func DefaultSessionGoals() []string {
	return []string{"Outcome-driven learning", "Micro-collaboration"}
}

// RescheduleNote is one entry of a session's reschedule/chat thread.
type RescheduleNote struct {
	From      string    `json:"from"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

type Session struct {
	ID                 string           `json:"id"`
	MentorID           string           `json:"mentorId"`
	LearnerID          string           `json:"learnerId"`
	Type               SessionType      `json:"type"`
	Skill              string           `json:"skill"`
	Duration           int              `json:"duration"` // minutes
	Credits            int              `json:"credits"`  // cost paid at creation
	Status             SessionStatus    `json:"status"`
	Goals              []string         `json:"goals"`
	Output             *string          `json:"output,omitempty"`
	Feedback           *string          `json:"feedback,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	ScheduledTime      *time.Time       `json:"scheduledTime,omitempty"`
	RescheduleRequests []RescheduleNote `json:"rescheduleRequests"`
}

// Archived reports whether the session belongs to history rather than the
// active list.
func (s Session) Archived() bool {
	return s.Status == SessionCompleted || s.Status == SessionCancelled
}
