package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shareprompts/internal/db"
	"shareprompts/internal/model"
)

// PromptRepository defines persistence operations on prompts.
type PromptRepository interface {
	Create(ctx context.Context, prompt *model.Prompt) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Prompt, error)
	ListWithCreators(ctx context.Context) ([]model.Prompt, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Prompt, error)
	Update(ctx context.Context, id uuid.UUID, text, tag string) (*model.Prompt, error)
	Delete(ctx context.Context, id uuid.UUID) error
	InsertMany(ctx context.Context, prompts []model.Prompt) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type promptRepository struct {
	conn db.Conn
}

// NewPromptRepository builds a GORM-backed repository on the shared connection.
func NewPromptRepository(conn db.Conn) PromptRepository {
	return &promptRepository{conn: conn}
}

func (r *promptRepository) Create(ctx context.Context, prompt *model.Prompt) error {
	gormDB, err := r.conn.DB()
	if err != nil {
		return err
	}
	return gormDB.WithContext(ctx).Create(prompt).Error
}

func (r *promptRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Prompt, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return nil, err
	}
	var prompt model.Prompt
	if err := gormDB.WithContext(ctx).Preload("Creator").Where("id = ?", id).First(&prompt).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

// ListWithCreators fetches every prompt and populates the creator reference.
// A prompt whose creator was deleted comes back with Creator nil.
func (r *promptRepository) ListWithCreators(ctx context.Context) ([]model.Prompt, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return nil, err
	}
	var prompts []model.Prompt
	if err := gormDB.WithContext(ctx).Preload("Creator").Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

func (r *promptRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Prompt, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return nil, err
	}
	var prompts []model.Prompt
	if err := gormDB.WithContext(ctx).Where("creator_id = ?", creatorID).Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

// Update replaces the text and tag of the matching prompt. The creator column
// is never touched here.
func (r *promptRepository) Update(ctx context.Context, id uuid.UUID, text, tag string) (*model.Prompt, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return nil, err
	}
	res := gormDB.WithContext(ctx).
		Model(&model.Prompt{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"prompt": text, "tag": tag})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *promptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	gormDB, err := r.conn.DB()
	if err != nil {
		return err
	}
	res := gormDB.WithContext(ctx).Where("id = ?", id).Delete(&model.Prompt{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// InsertMany bulk-inserts prompts in one call.
func (r *promptRepository) InsertMany(ctx context.Context, prompts []model.Prompt) error {
	if len(prompts) == 0 {
		return nil
	}
	gormDB, err := r.conn.DB()
	if err != nil {
		return err
	}
	return gormDB.WithContext(ctx).Create(&prompts).Error
}

// DeleteAll clears the collection and reports how many rows went away.
func (r *promptRepository) DeleteAll(ctx context.Context) (int64, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return 0, err
	}
	res := gormDB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Prompt{})
	return res.RowsAffected, res.Error
}

func (r *promptRepository) Count(ctx context.Context) (int64, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return 0, err
	}
	var count int64
	err = gormDB.WithContext(ctx).Model(&model.Prompt{}).Count(&count).Error
	return count, err
}
