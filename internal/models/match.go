package models

// MatchAnalysis is the strict result shape at the AI gateway boundary. Any
// transport or parse failure is converted to the deterministic fallback
// before it leaves the gateway; callers branch on the score, never on an
// error.
type MatchAnalysis struct {
	MatchScore     float64 `json:"matchScore"` // 0-100
	Explanation    string  `json:"explanation"`
	SuggestedTopic string  `json:"suggestedTopic"`
}

// MatchCandidate pairs a peer with the analysis of how well they can serve
// the current user's request.
type MatchCandidate struct {
	User User `json:"user"`
	MatchAnalysis
}

// LearningAdvice is the advisory assistant result for the current user.
type LearningAdvice struct {
	NextSkill       string `json:"nextSkill"`
	BurstIdea       string `json:"burstIdea"`
	MotivationalTip string `json:"motivationalTip"`
}

// SkillBurst is an entry on the live burst board.
type SkillBurst struct {
	ID    string `json:"id"`
	User  User   `json:"user"`
	Skill string `json:"skill"`
	Topic string `json:"topic"`
}
