package models

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyExpert       Proficiency = "Expert"
)

type LearningStyle string

const (
	LearningStyleHandsOn      LearningStyle = "Hands-on"
	LearningStyleExplanation  LearningStyle = "Explanation"
	LearningStyleProjectBased LearningStyle = "Project-based"
)

// Skill is a value type; it has no identity beyond its name within the
// owning list.
type Skill struct {
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

// User is either the single current user or one of the read-only peers.
// JSON field names match the persisted document format (camelCase).
type User struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Avatar        string        `json:"avatar"`
	Bio           string        `json:"bio"`
	Phone         *string       `json:"phone,omitempty"`
	SkillsOffered []Skill       `json:"skillsOffered"`
	SkillsWanted  []Skill       `json:"skillsWanted"`
	Availability  string        `json:"availability"`
	LearningStyle LearningStyle `json:"learningStyle"`
	Credits       int           `json:"credits"`
	Reputation    int           `json:"reputation"`
	Badges        []string      `json:"badges"`
	ImpactScore   int           `json:"impactScore"`
	Streak        int           `json:"streak"`
	Friends       []string      `json:"friends,omitempty"`
}
