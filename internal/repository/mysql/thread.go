package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/mysql/model"
)

type threadRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository creates the database side of the thread repository
func NewThreadRepository(db *gorm.DB, newID IDGenerator) *threadRepository {
	return &threadRepository{
		DB:    db,
		newID: newID,
	}
}

func (m *threadRepository) AddThread(ctx context.Context, owner string, nt domain.NewThread) (domain.AddedThread, error) {
	row := model.Thread{
		ID:        "thread-" + m.newID(),
		Title:     nt.Title,
		Body:      nt.Body,
		CreatedAt: time.Now(),
		OwnerID:   owner,
	}
	if err := m.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedThread{}, err
	}

	added := row.ToAdded()
	if err := added.Validate(); err != nil {
		return domain.AddedThread{}, err
	}
	return added, nil
}

func (m *threadRepository) VerifyThreadExists(ctx context.Context, id string) error {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Thread{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return &domain.NotFoundError{Resource: domain.ResourceThread}
	}
	return nil
}

func (m *threadRepository) GetThreadByID(ctx context.Context, id string) (domain.Thread, error) {
	var row model.ThreadWithUsername
	err := m.DB.WithContext(ctx).
		Table("threads").
		Select("threads.*, users.username").
		Joins("JOIN users ON users.id = threads.owner_id").
		Where("threads.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Thread{}, &domain.NotFoundError{Resource: domain.ResourceThread}
	}
	if err != nil {
		return domain.Thread{}, err
	}
	return row.ToDomain(), nil
}

func (m *threadRepository) FetchIDs(ctx context.Context, cursor string, limit int) (ids []string, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error
	return
}
