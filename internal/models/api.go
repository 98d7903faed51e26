package models

// API Error response
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

type CreateSessionRequest struct {
	PeerID        string `json:"peer_id"`
	Type          string `json:"type"`
	Skill         string `json:"skill"`
	ScheduledTime string `json:"scheduled_time,omitempty"` // RFC 3339, optional
}

type MatchRequest struct {
	Query string `json:"query"`
}

type CreateMeetingRequest struct {
	Topic string `json:"topic"`
}
