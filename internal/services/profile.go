package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/state"
)

var (
	ErrNoDraft      = errors.New("no draft in progress for surface")
	ErrUnknownList  = errors.New("unknown skill list")
	ErrUnknownIndex = errors.New("skill index out of range")
)

type DraftSurface string

const (
	// DraftProfile is the full-profile editor: identity fields plus both
	// skill lists.
	DraftProfile DraftSurface = "profile"
	// DraftDashboard is the dashboard quick-editor: skill lists only.
	DraftDashboard DraftSurface = "dashboard"
)

const (
	SkillListOffered = "offered"
	SkillListWanted  = "wanted"
)

// ProfileDraft is a working copy of the editable parts of the current user.
// Edits stay inside the draft until saved, so in-progress changes on one
// surface never leak into the other.
type ProfileDraft struct {
	Name          string         `json:"name"`
	Bio           string         `json:"bio"`
	Avatar        string         `json:"avatar"`
	SkillsOffered []models.Skill `json:"skillsOffered"`
	SkillsWanted  []models.Skill `json:"skillsWanted"`
}

// ProfileService maintains the two independent draft surfaces and applies
// saved drafts onto the current user.
type ProfileService struct {
	state  *state.AppState
	mu     sync.Mutex
	drafts map[DraftSurface]*ProfileDraft
}

func NewProfileService(appState *state.AppState) *ProfileService {
	return &ProfileService{
		state:  appState,
		drafts: make(map[DraftSurface]*ProfileDraft),
	}
}

// BeginDraft starts (or restarts) a draft for the surface from the current
// user's saved values.
func (s *ProfileService) BeginDraft(surface DraftSurface) ProfileDraft {
	user := s.state.CurrentUser()
	draft := ProfileDraft{
		Name:          user.Name,
		Bio:           user.Bio,
		Avatar:        user.Avatar,
		SkillsOffered: append([]models.Skill{}, user.SkillsOffered...),
		SkillsWanted:  append([]models.Skill{}, user.SkillsWanted...),
	}

	s.mu.Lock()
	s.drafts[surface] = &draft
	s.mu.Unlock()
	return draft
}

// Draft returns the in-progress draft for the surface, if any.
func (s *ProfileService) Draft(surface DraftSurface) (ProfileDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[surface]
	if !ok {
		return ProfileDraft{}, false
	}
	return *d, true
}

// SetIdentity updates the identity fields of the profile draft.
func (s *ProfileService) SetIdentity(surface DraftSurface, name, bio, avatar string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[surface]
	if !ok {
		return ErrNoDraft
	}
	d.Name = name
	d.Bio = bio
	d.Avatar = avatar
	return nil
}

// AddSkill appends a skill to one of the draft's lists. A name that trims
// to empty is silently ignored.
func (s *ProfileService) AddSkill(surface DraftSurface, list string, skill models.Skill) error {
	skill.Name = strings.TrimSpace(skill.Name)
	if skill.Name == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[surface]
	if !ok {
		return ErrNoDraft
	}

	switch list {
	case SkillListOffered:
		d.SkillsOffered = append(d.SkillsOffered, skill)
	case SkillListWanted:
		d.SkillsWanted = append(d.SkillsWanted, skill)
	default:
		return ErrUnknownList
	}
	return nil
}

// RemoveSkill drops the skill at index from one of the draft's lists.
func (s *ProfileService) RemoveSkill(surface DraftSurface, list string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[surface]
	if !ok {
		return ErrNoDraft
	}

	switch list {
	case SkillListOffered:
		if index < 0 || index >= len(d.SkillsOffered) {
			return ErrUnknownIndex
		}
		d.SkillsOffered = append(d.SkillsOffered[:index], d.SkillsOffered[index+1:]...)
	case SkillListWanted:
		if index < 0 || index >= len(d.SkillsWanted) {
			return ErrUnknownIndex
		}
		d.SkillsWanted = append(d.SkillsWanted[:index], d.SkillsWanted[index+1:]...)
	default:
		return ErrUnknownList
	}
	return nil
}

// SaveDraft copies the draft wholesale onto the current user and discards
// it. The profile surface carries identity fields; the dashboard surface
// carries only the skill lists.
func (s *ProfileService) SaveDraft(ctx context.Context, surface DraftSurface) error {
	s.mu.Lock()
	d, ok := s.drafts[surface]
	if ok {
		delete(s.drafts, surface)
	}
	s.mu.Unlock()
	if !ok {
		return ErrNoDraft
	}

	s.state.UpdateCurrentUser(ctx, func(u *models.User) {
		if surface == DraftProfile {
			u.Name = d.Name
			u.Bio = d.Bio
			u.Avatar = d.Avatar
		}
		u.SkillsOffered = d.SkillsOffered
		u.SkillsWanted = d.SkillsWanted
	})
	return nil
}

// DiscardDraft drops the draft without touching the current user.
func (s *ProfileService) DiscardDraft(surface DraftSurface) {
	s.mu.Lock()
	delete(s.drafts, surface)
	s.mu.Unlock()
}
