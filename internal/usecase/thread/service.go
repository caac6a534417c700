package thread

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/forum-api/domain"
)

const (
	// upper bound of concurrent reply fetches for one thread
	maxReplyFetchers = 8

	// an assembly outlives the request that triggered it
	assembleTimeout = 10 * time.Second
)

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	threadCache domain.ThreadCache

	sf singleflight.Group
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, tc domain.ThreadCache) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		threadCache: tc,
	}
}

func (s *Service) AddThread(ctx context.Context, owner string, p domain.Payload) (domain.AddedThread, error) {
	nt, err := domain.NewThreadFromPayload(p)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return s.threadRepo.AddThread(ctx, owner, nt)
}

func (s *Service) GetThread(ctx context.Context, id string) (domain.ThreadDetail, error) {
	if err := s.threadRepo.VerifyThreadExists(ctx, id); err != nil {
		return domain.ThreadDetail{}, err
	}

	view, expired, err := s.threadCache.GetThreadView(ctx, id)
	if err == nil {
		if expired {
			// 逻辑过期：先返回旧数据，后台重建
			go s.rebuild(id)
		}
		return view, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("cache get error: %v", err)
	}

	return s.load(ctx, id)
}

// load assembles the view once per thread id no matter how many callers miss
// together. The shared assembly is detached from the first caller's
// cancellation so the other waiters do not fail with it.
func (s *Service) load(ctx context.Context, id string) (domain.ThreadDetail, error) {
	v, err, _ := s.sf.Do(id, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), assembleTimeout)
		defer cancel()

		// read before assembling, so a write that lands meanwhile bumps it
		version, verErr := s.threadCache.ThreadVersion(ctx, id)
		if verErr != nil {
			logrus.Warnf("failed to read cache version of thread %s: %v", id, verErr)
		}

		view, err := s.assemble(ctx, id)
		if err != nil {
			return nil, err
		}
		if verErr == nil {
			s.store(ctx, view, version)
		}
		return view, nil
	})
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	return v.(domain.ThreadDetail), nil
}

func (s *Service) store(ctx context.Context, view domain.ThreadDetail, version int64) {
	stored, err := s.threadCache.SetThreadView(ctx, view, version)
	if err != nil {
		logrus.Warnf("failed to set cache for thread %s: %v", view.ID, err)
		return
	}
	if !stored {
		logrus.Debugf("thread %s changed while assembling, view not cached", view.ID)
	}
}

func (s *Service) rebuild(id string) {
	if _, err := s.load(context.Background(), id); err != nil {
		logrus.Errorf("failed to rebuild thread view %s: %v", id, err)
	}
}

/*
* Replies are fetched per comment with errgroup. Every goroutine writes
* into its own slot, so the nesting follows the comment order and not
* the order in which the fetches complete.
 */
func (s *Service) assemble(ctx context.Context, id string) (domain.ThreadDetail, error) {
	thread, err := s.threadRepo.GetThreadByID(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.commentRepo.FetchByThreadID(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	details := make([]domain.CommentDetail, len(comments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxReplyFetchers)
	for i, c := range comments {
		g.Go(func() error {
			replies, err := s.replyRepo.FetchByCommentID(gctx, c.ID)
			if err != nil {
				return err
			}
			details[i] = toCommentDetail(c, replies)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ThreadDetail{}, err
	}

	return domain.ThreadDetail{
		ID:       thread.ID,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.CreatedAt,
		Username: thread.OwnerUsername,
		Comments: details,
	}, nil
}

func toCommentDetail(c domain.Comment, replies []domain.Reply) domain.CommentDetail {
	rd := make([]domain.ReplyDetail, len(replies))
	for i, r := range replies {
		rd[i] = domain.ReplyDetail{
			ID:       r.ID,
			Content:  r.RenderedContent(),
			Date:     r.CreatedAt,
			Username: r.OwnerUsername,
		}
	}
	return domain.CommentDetail{
		ID:        c.ID,
		Username:  c.OwnerUsername,
		Date:      c.CreatedAt,
		Content:   c.RenderedContent(),
		LikeCount: c.LikeCount,
		Replies:   rd,
	}
}
