package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"encoding/json"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"skillflow-backend/internal/models"
)

const geminiModelName = "gemini-3-flash-preview"

// GeminiService talks to the hosted model. Every public method converts any
// transport or parse failure into a deterministic fallback value; callers
// branch on the result, never on an error.
type GeminiService struct {
	client      *genai.Client
	matchModel  *genai.GenerativeModel
	adviceModel *genai.GenerativeModel
	rateChan    chan struct{} // Token bucket
}

func NewGeminiService(apiKey string, concurrentReqs int) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	matchModel := client.GenerativeModel(geminiModelName)
	matchModel.SetTemperature(0.3)
	matchModel.ResponseMIMEType = "application/json"
	matchModel.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"matchScore": {
				Type:        genai.TypeNumber,
				Description: "The matching score between 0 and 100",
			},
			"explanation": {
				Type:        genai.TypeString,
				Description: "Brief 2-sentence explanation of the match",
			},
			"suggestedTopic": {
				Type:        genai.TypeString,
				Description: "A specific sub-topic for the first session",
			},
		},
		Required: []string{"matchScore", "explanation", "suggestedTopic"},
	}

	adviceModel := client.GenerativeModel(geminiModelName)
	adviceModel.SetTemperature(0.3)
	adviceModel.ResponseMIMEType = "application/json"
	adviceModel.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"nextSkill":       {Type: genai.TypeString},
			"burstIdea":       {Type: genai.TypeString},
			"motivationalTip": {Type: genai.TypeString},
		},
		Required: []string{"nextSkill", "burstIdea", "motivationalTip"},
	}

	// Token bucket capping concurrent model calls
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GeminiService{
		client:      client,
		matchModel:  matchModel,
		adviceModel: adviceModel,
		rateChan:    rateChan,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

// AnalyzeMatch scores how well a peer can satisfy the requester's wanted
// skills or detailed query.
func (s *GeminiService) AnalyzeMatch(ctx context.Context, requester, peer models.User, query string) models.MatchAnalysis {
	if err := s.acquireRate(ctx); err != nil {
		log.Printf("gemini: match analysis rate wait failed: %v", err)
		return fallbackAnalysis()
	}
	defer s.releaseRate()

	prompt := buildMatchPrompt(requester, peer, query)

	resp, err := s.matchModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("gemini: match analysis error: %v", err)
		return fallbackAnalysis()
	}

	raw := cleanJSONOutput(extractText(resp))
	if raw == "" {
		log.Printf("gemini: match analysis returned empty text")
		return fallbackAnalysis()
	}

	var analysis models.MatchAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		log.Printf("gemini: unparseable match analysis: %v", err)
		return fallbackAnalysis()
	}

	if analysis.MatchScore < 0 {
		analysis.MatchScore = 0
	}
	if analysis.MatchScore > 100 {
		analysis.MatchScore = 100
	}
	return analysis
}

// LearningAdvice asks the model for next-skill guidance for the current
// user. Returns nil on any failure.
func (s *GeminiService) LearningAdvice(ctx context.Context, user models.User) *models.LearningAdvice {
	if err := s.acquireRate(ctx); err != nil {
		log.Printf("gemini: advice rate wait failed: %v", err)
		return nil
	}
	defer s.releaseRate()

	prompt := buildAdvicePrompt(user)

	resp, err := s.adviceModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("gemini: advice error: %v", err)
		return nil
	}

	raw := cleanJSONOutput(extractText(resp))
	var advice models.LearningAdvice
	if err := json.Unmarshal([]byte(raw), &advice); err != nil {
		log.Printf("gemini: unparseable advice: %v", err)
		return nil
	}
	return &advice
}

func fallbackAnalysis() models.MatchAnalysis {
	return models.MatchAnalysis{
		MatchScore:     0,
		Explanation:    "Unable to analyze match at this time.",
		SuggestedTopic: "N/A",
	}
}

func buildMatchPrompt(requester, peer models.User, query string) string {
	if strings.TrimSpace(query) == "" {
		query = "No detailed query provided."
	}

	return fmt.Sprintf(`Analyze the compatibility between two users for a skill exchange platform.

User 1 (The Requester):
- Name: %s
- Skills Offered: %s
- Skills Wanted: %s
- Detailed Request: %s

User 2 (The Potential Peer):
- Name: %s
- Skills Offered: %s
- Skills Wanted: %s

Analyze how well User 2 can satisfy User 1's "Detailed Request" or "Skills Wanted" based on their "Skills Offered".

Provide a JSON response with:
1. matchScore: 0-100 (weighted heavily on the Detailed Request if provided)
2. explanation: A 2-sentence explanation of why they match.
3. suggestedTopic: One specific sub-topic mentioned in the request.`,
		requester.Name, skillNames(requester.SkillsOffered), skillNames(requester.SkillsWanted), query,
		peer.Name, skillNames(peer.SkillsOffered), skillNames(peer.SkillsWanted))
}

func buildAdvicePrompt(user models.User) string {
	return fmt.Sprintf(`You are an AI Learning Assistant for a SkillFlow platform.
Analyze the profile of %s:
- Skills Offered: %s
- Skills Wanted: %s
- Impact Score: %d

Suggest:
1. The most valuable next skill they should learn to complement their "Offered" skills.
2. A "15-minute Skill Burst" idea they could offer right now.
3. A motivational tip based on their streak of %d days.

Return as a JSON object.`,
		user.Name, skillNames(user.SkillsOffered), skillNames(user.SkillsWanted), user.ImpactScore, user.Streak)
}

func skillNames(skills []models.Skill) string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

// cleanJSONOutput strips markdown fences the model sometimes wraps around
// JSON payloads.
func cleanJSONOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					sb.WriteString(string(t))
				}
			}
		}
	}
	return sb.String()
}
