package models

// Seed data used when the store holds no prior state. Mirrors the demo
// network the product ships with.

func SeedCurrentUser() User {
	return User{
		ID:     "u-1",
		Name:   "Alex Rivera",
		Avatar: "https://picsum.photos/seed/alex/200",
		Bio:    "Software Engineer passionate about teaching Python and learning UI design.",
		SkillsOffered: []Skill{
			{Name: "Python", Proficiency: ProficiencyExpert},
			{Name: "SQL", Proficiency: ProficiencyIntermediate},
		},
		SkillsWanted: []Skill{
			{Name: "React", Proficiency: ProficiencyBeginner},
			{Name: "Figma", Proficiency: ProficiencyBeginner},
		},
		Availability:  "Weekdays after 6 PM",
		LearningStyle: LearningStyleProjectBased,
		Credits:       12,
		Reputation:    98,
		Badges:        []string{"Top Mentor", "Fast Responder"},
		ImpactScore:   450,
		Streak:        5,
	}
}

func SeedPeers() []User {
	return []User{
		{
			ID:     "u-2",
			Name:   "Sarah Chen",
			Avatar: "https://picsum.photos/seed/sarah/200",
			Bio:    "Product Designer looking to understand backend basics.",
			SkillsOffered: []Skill{
				{Name: "Figma", Proficiency: ProficiencyExpert},
				{Name: "UI Design", Proficiency: ProficiencyExpert},
			},
			SkillsWanted: []Skill{
				{Name: "Python", Proficiency: ProficiencyBeginner},
				{Name: "Node.js", Proficiency: ProficiencyBeginner},
			},
			Availability:  "Flexible weekends",
			LearningStyle: LearningStyleHandsOn,
			Credits:       8,
			Reputation:    95,
			Badges:        []string{"Design Guru"},
			ImpactScore:   320,
			Streak:        3,
		},
		{
			ID:     "u-3",
			Name:   "James Wilson",
			Avatar: "https://picsum.photos/seed/james/200",
			Bio:    "Fullstack dev. Happy to help with React/Next.js.",
			SkillsOffered: []Skill{
				{Name: "React", Proficiency: ProficiencyExpert},
				{Name: "Next.js", Proficiency: ProficiencyExpert},
			},
			SkillsWanted: []Skill{
				{Name: "Public Speaking", Proficiency: ProficiencyIntermediate},
			},
			Availability:  "Mon-Wed 8PM-10PM",
			LearningStyle: LearningStyleExplanation,
			Credits:       25,
			Reputation:    99,
			Badges:        []string{"Code Master", "Patient Teacher"},
			ImpactScore:   890,
			Streak:        12,
		},
	}
}

// SeedBursts populates the live skill-burst board.
func SeedBursts() []SkillBurst {
	peers := SeedPeers()
	return []SkillBurst{
		{
			ID:    "b-1",
			User:  peers[0],
			Skill: "Figma",
			Topic: "Quick feedback on your mobile app wireframes",
		},
		{
			ID:    "b-2",
			User:  peers[1],
			Skill: "React",
			Topic: "Debugging useEffect dependency issues",
		},
	}
}
