package services

import (
	"context"
	"sort"
	"sync"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/state"
)

// MatchAnalyzer is the gateway contract: it always returns a usable
// analysis, substituting a zero-score fallback on failure.
type MatchAnalyzer interface {
	AnalyzeMatch(ctx context.Context, requester, peer models.User, query string) models.MatchAnalysis
}

// MatchService fans a match query out to the whole peer network and ranks
// the results.
type MatchService struct {
	state    *state.AppState
	analyzer MatchAnalyzer
}

func NewMatchService(appState *state.AppState, analyzer MatchAnalyzer) *MatchService {
	return &MatchService{state: appState, analyzer: analyzer}
}

// FindMatches scores every peer concurrently, one gateway call each, then
// sorts descending by score. The sort is stable: equal scores keep the
// peer-list order.
func (s *MatchService) FindMatches(ctx context.Context, query string) []models.MatchCandidate {
	requester := s.state.CurrentUser()
	peers := s.state.Peers()

	candidates := make([]models.MatchCandidate, len(peers))
	var wg sync.WaitGroup
	for i, peer := range peers {
		wg.Add(1)
		go func(i int, peer models.User) {
			defer wg.Done()
			candidates[i] = models.MatchCandidate{
				User:          peer,
				MatchAnalysis: s.analyzer.AnalyzeMatch(ctx, requester, peer, query),
			}
		}(i, peer)
	}
	wg.Wait()

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})
	return candidates
}
