package mysql

import (
	"context"
	"errors"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/mysql/model"
)

type commentRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, newID IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		newID: newID,
	}
}

func (c *commentRepository) AddComment(ctx context.Context, threadID, owner string, nc domain.NewComment) (domain.AddedComment, error) {
	row := model.Comment{
		ID:        "comment-" + c.newID(),
		Content:   nc.Content,
		CreatedAt: time.Now(),
		ThreadID:  threadID,
		OwnerID:   owner,
	}
	if err := c.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedComment{}, err
	}

	added := row.ToAdded()
	if err := added.Validate(); err != nil {
		return domain.AddedComment{}, err
	}
	return added, nil
}

// VerifyCommentExists only matches a comment posted on threadID.
func (c *commentRepository) VerifyCommentExists(ctx context.Context, threadID, id string) error {
	var count int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ? AND thread_id = ?", id, threadID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return &domain.NotFoundError{Resource: domain.ResourceComment}
	}
	return nil
}

func (c *commentRepository) VerifyCommentOwner(ctx context.Context, id, owner string) error {
	var count int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ? AND owner_id = ?", id, owner).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return &domain.ForbiddenError{Resource: domain.ResourceComment}
	}
	return nil
}

// SoftDeleteComment relies on the connection reporting matched rows
// (clientFoundRows), so deleting an already deleted comment is not forbidden.
func (c *commentRepository) SoftDeleteComment(ctx context.Context, id, owner string) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND owner_id = ?", id, owner).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &domain.ForbiddenError{Resource: domain.ResourceComment}
	}
	return nil
}

func (c *commentRepository) FetchByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	var rows []model.CommentWithUsername
	err := c.DB.WithContext(ctx).
		Table("comments").
		Select("comments.*, users.username").
		Joins("JOIN users ON users.id = comments.owner_id").
		Where("comments.thread_id = ?", threadID).
		Order("comments.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

// HasLiked is a locking read; inside WithinTransaction it holds the
// (comment, owner) range until the toggle commits.
func (c *commentRepository) HasLiked(ctx context.Context, commentID, owner string) (bool, error) {
	var count int64
	err := c.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("comment_id = ? AND owner_id = ?", commentID, owner).
		Count(&count).Error
	return count > 0, err
}

// errDuplicateEntry is the mysql error number of a unique key violation
const errDuplicateEntry = 1062

// AddLike returns ErrConflict when the pair already liked, which only
// happens when two toggles of the same user race.
func (c *commentRepository) AddLike(ctx context.Context, commentID, owner string) error {
	like := &model.CommentLike{
		ID:        "like-" + c.newID(),
		CommentID: commentID,
		OwnerID:   owner,
	}
	err := c.DB.WithContext(ctx).Create(like).Error
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
		return domain.ErrConflict
	}
	return err
}

// RemoveLike returns ErrConflict when there was no like to remove, so a
// racing unlike rolls back instead of decrementing twice.
func (c *commentRepository) RemoveLike(ctx context.Context, commentID, owner string) error {
	result := c.DB.WithContext(ctx).
		Where("comment_id = ? AND owner_id = ?", commentID, owner).
		Delete(&model.CommentLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (c *commentRepository) IncrementLikeCount(ctx context.Context, commentID string) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &domain.NotFoundError{Resource: domain.ResourceComment}
	}
	return nil
}

// DecrementLikeCount never takes the counter below zero. A counter
// already at zero is drift and fails with ErrConflict.
func (c *commentRepository) DecrementLikeCount(ctx context.Context, commentID string) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND like_count > 0", commentID).
		UpdateColumn("like_count", gorm.Expr("like_count - ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (c *commentRepository) WithinTransaction(ctx context.Context, fn func(repo domain.CommentRepository) error) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&commentRepository{DB: tx, newID: c.newID})
	})
}

const likeCountDrift = `
FROM comments c
LEFT JOIN (
	SELECT comment_id, COUNT(*) AS cnt FROM comment_likes GROUP BY comment_id
) l ON l.comment_id = c.id
WHERE c.like_count <> COALESCE(l.cnt, 0)`

const driftedThreadsSQL = "SELECT DISTINCT c.thread_id" + likeCountDrift

const reconcileLikeCountsSQL = `
UPDATE comments c
LEFT JOIN (
	SELECT comment_id, COUNT(*) AS cnt FROM comment_likes GROUP BY comment_id
) l ON l.comment_id = c.id
SET c.like_count = COALESCE(l.cnt, 0)
WHERE c.like_count <> COALESCE(l.cnt, 0)`

// ReconcileLikeCounts rewrites drifted counters and reports the threads
// whose rendered views now hold a stale likeCount.
func (c *commentRepository) ReconcileLikeCounts(ctx context.Context) (int64, []string, error) {
	var (
		repaired  int64
		threadIDs []string
	)
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(driftedThreadsSQL).Scan(&threadIDs).Error; err != nil {
			return err
		}
		if len(threadIDs) == 0 {
			return nil
		}
		result := tx.Exec(reconcileLikeCountsSQL)
		repaired = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, nil, err
	}
	return repaired, threadIDs, nil
}
