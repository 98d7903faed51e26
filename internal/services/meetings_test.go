package services

import (
	"context"
	"strings"
	"testing"
)

func TestCreateMeeting(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	svc := NewMeetingService(appState, "https://skillflow.meet/")

	meeting, err := svc.Create(ctx, "Distributed systems study group")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !strings.HasPrefix(meeting.Link, "https://skillflow.meet/") {
		t.Errorf("link should carry the share base URL, got %q", meeting.Link)
	}
	token := strings.TrimPrefix(meeting.Link, "https://skillflow.meet/")
	if len(token) != 7 {
		t.Errorf("expected a 7 character token, got %q", token)
	}
	for _, r := range token {
		if !strings.ContainsRune(tokenAlphabet, r) {
			t.Errorf("token %q contains character outside the alphabet", token)
		}
	}
	if len(meeting.Participants) != 1 || meeting.Participants[0] != appState.CurrentUser().ID {
		t.Errorf("creator should be the sole participant, got %v", meeting.Participants)
	}
	if len(appState.Meetings()) != 1 {
		t.Errorf("meeting should be stored")
	}
}

func TestCreateMeetingEmptyTopic(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	svc := NewMeetingService(appState, "https://skillflow.meet/")

	if _, err := svc.Create(ctx, "   "); err != ErrEmptyTopic {
		t.Fatalf("expected ErrEmptyTopic, got %v", err)
	}
	if len(appState.Meetings()) != 0 {
		t.Errorf("refused creation must not store a meeting")
	}
}

func TestDeleteMeeting(t *testing.T) {
	ctx := context.Background()
	appState := newTestState(t)
	svc := NewMeetingService(appState, "https://skillflow.meet/")

	meeting, err := svc.Create(ctx, "Pairing room")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !svc.Delete(ctx, meeting.ID) {
		t.Fatalf("expected delete to find the meeting")
	}
	if svc.Delete(ctx, meeting.ID) {
		t.Errorf("deleting twice should report not found")
	}
}
