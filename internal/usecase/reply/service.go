package reply

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	threadCache domain.ThreadCache
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository, replyRepo domain.ReplyRepository, threadCache domain.ThreadCache) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
		threadCache: threadCache,
	}
}

// mustExist checks the parents of a reply, thread first. The comment must
// belong to the thread.
func (s *service) mustExist(ctx context.Context, threadID, commentID string) error {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}
	return s.commentRepo.VerifyCommentExists(ctx, threadID, commentID)
}

func (s *service) AddReply(ctx context.Context, threadID, commentID, owner string, p domain.Payload) (domain.AddedReply, error) {
	nr, err := domain.NewReplyFromPayload(p)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.mustExist(ctx, threadID, commentID); err != nil {
		return domain.AddedReply{}, err
	}

	added, err := s.replyRepo.AddReply(ctx, commentID, owner, nr)
	if err != nil {
		return domain.AddedReply{}, err
	}
	s.invalidate(ctx, threadID)
	return added, nil
}

func (s *service) DeleteReply(ctx context.Context, threadID, commentID, replyID, owner string) error {
	if err := s.mustExist(ctx, threadID, commentID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyExists(ctx, commentID, replyID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyOwner(ctx, replyID, owner); err != nil {
		return err
	}
	if err := s.replyRepo.SoftDeleteReply(ctx, replyID, owner); err != nil {
		return err
	}
	s.invalidate(ctx, threadID)
	return nil
}

func (s *service) invalidate(ctx context.Context, threadID string) {
	if err := s.threadCache.InvalidateThread(ctx, threadID); err != nil {
		logrus.Warnf("failed to invalidate thread view %s: %v", threadID, err)
	}
}
