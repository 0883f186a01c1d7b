package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prompt is a short piece of text filed under a tag and owned by a creator.
// Creator is populated by the join-list path and stays nil when the
// referenced user no longer exists; orphaned prompts are kept, not filtered.
type Prompt struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Text      string    `json:"prompt" gorm:"column:prompt;type:text;not null"`
	Tag       string    `json:"tag" gorm:"size:255;not null"`
	CreatorID uuid.UUID `json:"creator_id" gorm:"type:char(36);index;not null"`
	Creator   *User     `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the id.
func (p *Prompt) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
