package goalrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"goalsmith/internal/spec"
)

// Goal is the persisted form of a compiled goal spec. The nested
// spec lists are stored as JSON columns.
type Goal struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"index"`
	Title        string         `json:"title" gorm:"size:100;not null;index"`
	SourceText   string         `json:"source_text" gorm:"size:1000"`
	Duration     string         `json:"duration" gorm:"size:32"`
	DurationDays int            `json:"duration_days"`
	Category     string         `json:"category" gorm:"size:16;index"`
	Target       string         `json:"target" gorm:"size:200"`
	Milestones   datatypes.JSON `json:"milestones"`
	Trackers     datatypes.JSON `json:"trackers"`
	Motivation   datatypes.JSON `json:"motivation"`
	Gamification datatypes.JSON `json:"gamification"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// FromSpec converts a compiled spec to its persisted form.
func FromSpec(userID uint, sourceText string, s *spec.GoalSpec) (*Goal, error) {
	milestones, err := json.Marshal(s.Milestones)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal milestones: %w", err)
	}
	trackers, err := json.Marshal(s.Trackers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trackers: %w", err)
	}
	motivation, err := json.Marshal(s.Motivation)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal motivation: %w", err)
	}
	gamification, err := json.Marshal(s.Gamification)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gamification: %w", err)
	}
	return &Goal{
		UserID:       userID,
		Title:        s.Title,
		SourceText:   sourceText,
		Duration:     s.Duration,
		DurationDays: s.DurationDays,
		Category:     string(s.Category),
		Target:       s.Target,
		Milestones:   milestones,
		Trackers:     trackers,
		Motivation:   motivation,
		Gamification: gamification,
	}, nil
}

// Spec reconstructs the compiled spec from the stored row.
func (g *Goal) Spec() (*spec.GoalSpec, error) {
	s := &spec.GoalSpec{
		Title:        g.Title,
		Duration:     g.Duration,
		DurationDays: g.DurationDays,
		Category:     spec.Category(g.Category),
		Target:       g.Target,
	}
	if len(g.Milestones) > 0 {
		if err := json.Unmarshal(g.Milestones, &s.Milestones); err != nil {
			return nil, fmt.Errorf("failed to unmarshal milestones: %w", err)
		}
	}
	if len(g.Trackers) > 0 {
		if err := json.Unmarshal(g.Trackers, &s.Trackers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal trackers: %w", err)
		}
	}
	if len(g.Motivation) > 0 {
		if err := json.Unmarshal(g.Motivation, &s.Motivation); err != nil {
			return nil, fmt.Errorf("failed to unmarshal motivation: %w", err)
		}
	}
	if len(g.Gamification) > 0 {
		if err := json.Unmarshal(g.Gamification, &s.Gamification); err != nil {
			return nil, fmt.Errorf("failed to unmarshal gamification: %w", err)
		}
	}
	return s, nil
}
