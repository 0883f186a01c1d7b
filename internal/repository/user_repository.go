package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shareprompts/internal/db"
	"shareprompts/internal/model"
)

// UserRepository defines persistence operations on users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	InsertMany(ctx context.Context, users []model.User) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	conn db.Conn
}

// NewUserRepository builds a GORM-backed repository on the shared connection.
func NewUserRepository(conn db.Conn) UserRepository {
	return &userRepository{conn: conn}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	gormDB, err := r.conn.DB()
	if err != nil {
		return err
	}
	return gormDB.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := gormDB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := gormDB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := gormDB.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return nil, err
	}
	var ids []uuid.UUID
	if err := gormDB.WithContext(ctx).Model(&model.User{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// InsertMany bulk-inserts users in one call. Hooks assign ids back onto the
// caller's slice elements.
func (r *userRepository) InsertMany(ctx context.Context, users []model.User) error {
	if len(users) == 0 {
		return nil
	}
	gormDB, err := r.conn.DB()
	if err != nil {
		return err
	}
	return gormDB.WithContext(ctx).Create(&users).Error
}

// DeleteAll clears the collection and reports how many rows went away.
func (r *userRepository) DeleteAll(ctx context.Context) (int64, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return 0, err
	}
	res := gormDB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.User{})
	return res.RowsAffected, res.Error
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	gormDB, err := r.conn.DB()
	if err != nil {
		return 0, err
	}
	var count int64
	err = gormDB.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}
