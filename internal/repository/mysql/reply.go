package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/mysql/model"
)

type replyRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, newID IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		newID: newID,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, commentID, owner string, nr domain.NewReply) (domain.AddedReply, error) {
	row := model.Reply{
		ID:        "reply-" + r.newID(),
		Content:   nr.Content,
		CreatedAt: time.Now(),
		CommentID: commentID,
		OwnerID:   owner,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedReply{}, err
	}

	added := row.ToAdded()
	if err := added.Validate(); err != nil {
		return domain.AddedReply{}, err
	}
	return added, nil
}

func (r *replyRepository) VerifyReplyExists(ctx context.Context, commentID, id string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Reply{}).Where("id = ? AND comment_id = ?", id, commentID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return &domain.NotFoundError{Resource: domain.ResourceReply}
	}
	return nil
}

func (r *replyRepository) VerifyReplyOwner(ctx context.Context, id, owner string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Reply{}).Where("id = ? AND owner_id = ?", id, owner).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return &domain.ForbiddenError{Resource: domain.ResourceReply}
	}
	return nil
}

func (r *replyRepository) SoftDeleteReply(ctx context.Context, id, owner string) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ? AND owner_id = ?", id, owner).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &domain.ForbiddenError{Resource: domain.ResourceReply}
	}
	return nil
}

func (r *replyRepository) FetchByCommentID(ctx context.Context, commentID string) ([]domain.Reply, error) {
	var rows []model.ReplyWithUsername
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select("replies.*, users.username").
		Joins("JOIN users ON users.id = replies.owner_id").
		Where("replies.comment_id = ?", commentID).
		Order("replies.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Reply, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
