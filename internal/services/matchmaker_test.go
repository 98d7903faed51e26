package services

import (
	"context"
	"testing"

	"skillflow-backend/internal/models"
)

// scriptedAnalyzer returns a fixed score per peer id, falling back to zero
// for anyone unlisted.
type scriptedAnalyzer struct {
	scores map[string]float64
}

func (a *scriptedAnalyzer) AnalyzeMatch(_ context.Context, _, peer models.User, _ string) models.MatchAnalysis {
	return models.MatchAnalysis{
		MatchScore:     a.scores[peer.ID],
		Explanation:    "scripted",
		SuggestedTopic: "scripted",
	}
}

func TestFindMatchesRanksDescending(t *testing.T) {
	appState := newTestState(t)
	analyzer := &scriptedAnalyzer{scores: map[string]float64{
		"u-2": 40,
		"u-3": 85,
	}}
	svc := NewMatchService(appState, analyzer)

	candidates := svc.FindMatches(context.Background(), "I want to learn system design")
	if len(candidates) != 2 {
		t.Fatalf("expected a candidate per peer, got %d", len(candidates))
	}
	if candidates[0].User.ID != "u-3" || candidates[1].User.ID != "u-2" {
		t.Errorf("expected descending score order, got %s then %s", candidates[0].User.ID, candidates[1].User.ID)
	}
	if candidates[0].MatchScore != 85 {
		t.Errorf("candidate should carry its analysis, got score %v", candidates[0].MatchScore)
	}
}

func TestFindMatchesStableOnTies(t *testing.T) {
	appState := newTestState(t)
	analyzer := &scriptedAnalyzer{scores: map[string]float64{}}
	svc := NewMatchService(appState, analyzer)

	peers := appState.Peers()
	candidates := svc.FindMatches(context.Background(), "anything")
	if len(candidates) != len(peers) {
		t.Fatalf("expected %d candidates, got %d", len(peers), len(candidates))
	}
	// All scores equal: the peer list order must be preserved.
	for i := range peers {
		if candidates[i].User.ID != peers[i].ID {
			t.Errorf("tie at position %d broke peer order: got %s, want %s", i, candidates[i].User.ID, peers[i].ID)
		}
	}
}
