package comment

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

var likeToggles = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "forum_comment_like_toggles_total",
		Help: "Total number of applied comment like toggles",
	},
	[]string{"action"},
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	threadCache domain.ThreadCache
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository, threadCache domain.ThreadCache) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		threadCache: threadCache,
	}
}

func (s *service) AddComment(ctx context.Context, threadID, owner string, p domain.Payload) (domain.AddedComment, error) {
	nc, err := domain.NewCommentFromPayload(p)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}

	added, err := s.commentRepo.AddComment(ctx, threadID, owner, nc)
	if err != nil {
		return domain.AddedComment{}, err
	}
	s.invalidate(ctx, threadID)
	return added, nil
}

func (s *service) DeleteComment(ctx context.Context, threadID, commentID, owner string) error {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentExists(ctx, threadID, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentOwner(ctx, commentID, owner); err != nil {
		return err
	}
	// 条件更新，owner不匹配时不会写入
	if err := s.commentRepo.SoftDeleteComment(ctx, commentID, owner); err != nil {
		return err
	}
	s.invalidate(ctx, threadID)
	return nil
}

// LikeComment likes the comment if owner has not liked it yet, and unlikes it otherwise.
func (s *service) LikeComment(ctx context.Context, threadID, commentID, owner string) error {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}

	action := domain.Like
	err := s.commentRepo.WithinTransaction(ctx, func(repo domain.CommentRepository) error {
		if err := repo.VerifyCommentExists(ctx, threadID, commentID); err != nil {
			return err
		}
		liked, err := repo.HasLiked(ctx, commentID, owner)
		if err != nil {
			return err
		}

		if liked {
			action = domain.Unlike
			if err := repo.RemoveLike(ctx, commentID, owner); err != nil {
				return err
			}
			return repo.DecrementLikeCount(ctx, commentID)
		}

		action = domain.Like
		if err := repo.AddLike(ctx, commentID, owner); err != nil {
			return err
		}
		return repo.IncrementLikeCount(ctx, commentID)
	})
	if err != nil {
		return err
	}

	likeToggles.WithLabelValues(action.String()).Inc()
	s.invalidate(ctx, threadID)
	return nil
}

func (s *service) invalidate(ctx context.Context, threadID string) {
	if err := s.threadCache.InvalidateThread(ctx, threadID); err != nil {
		logrus.Warnf("failed to invalidate thread view %s: %v", threadID, err)
	}
}
