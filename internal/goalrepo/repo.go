package goalrepo

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("goal not found")
	ErrDuplicate = errors.New("goal title already exists")
)

// Repository provides goal persistence scoped per user.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create rejects a second live goal with the same title for the same
// user. Uniqueness lives here rather than in a DB constraint so a
// soft-deleted goal never blocks re-creating its title.
func (r *Repository) Create(g *Goal) error {
	if _, err := r.ByTitle(g.UserID, g.Title); err == nil {
		return ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := r.db.Create(g).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

func (r *Repository) List(userID uint) ([]Goal, error) {
	var goals []Goal
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (r *Repository) ByTitle(userID uint, title string) (*Goal, error) {
	var g Goal
	err := r.db.Where("user_id = ? AND title = ?", userID, title).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}
	return &g, nil
}

func (r *Repository) Update(g *Goal) error {
	if err := r.db.Save(g).Error; err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	return nil
}

func (r *Repository) Delete(userID uint, title string) error {
	res := r.db.Where("user_id = ? AND title = ?", userID, title).Delete(&Goal{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
