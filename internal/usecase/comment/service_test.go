package comment

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/domain/mocks"
)

type deps struct {
	threads  *mocks.ThreadRepository
	comments *mocks.CommentRepository
	tx       *mocks.CommentRepository
	cache    *mocks.ThreadCache
}

func newService(t *testing.T) (*service, deps) {
	d := deps{
		threads:  mocks.NewThreadRepository(t),
		comments: mocks.NewCommentRepository(t),
		tx:       mocks.NewCommentRepository(t),
		cache:    mocks.NewThreadCache(t),
	}
	return NewService(d.threads, d.comments, d.cache), d
}

// expectTx makes WithinTransaction run its callback against the tx mock.
func (d deps) expectTx(ctx context.Context, commitErr error) {
	d.comments.On("WithinTransaction", ctx, mock.Anything).
		Return(func(_ context.Context, fn func(domain.CommentRepository) error) error {
			if err := fn(d.tx); err != nil {
				return err
			}
			return commitErr
		}).Once()
}

func notFound(resource string) error {
	return &domain.NotFoundError{Resource: resource}
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, d := newService(t)
		content := faker.Sentence()
		expected := domain.AddedComment{ID: "comment-123", Content: content, Owner: "user-123"}
		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.comments.On("AddComment", ctx, "thread-123", "user-123", domain.NewComment{Content: content}).
			Return(expected, nil).Once()
		d.cache.On("InvalidateThread", ctx, "thread-123").Return(nil).Once()

		res, err := svc.AddComment(ctx, "thread-123", "user-123", domain.Payload{"content": content})
		require.NoError(t, err)
		assert.Equal(t, expected, res)
	})

	t.Run("validation runs before any lookup", func(t *testing.T) {
		svc, d := newService(t)

		_, err := svc.AddComment(ctx, "thread-123", "user-123", domain.Payload{"content": true})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, domain.TypeMismatch, ve.Kind)
		d.threads.AssertNotCalled(t, "VerifyThreadExists", mock.Anything, mock.Anything)
	})

	t.Run("thread not found never writes", func(t *testing.T) {
		svc, d := newService(t)
		d.threads.On("VerifyThreadExists", ctx, "thread-404").Return(notFound(domain.ResourceThread)).Once()

		_, err := svc.AddComment(ctx, "thread-404", "user-123", domain.Payload{"content": "abc"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.comments.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		d.cache.AssertNotCalled(t, "InvalidateThread", mock.Anything, mock.Anything)
	})

	t.Run("cache failure is not fatal", func(t *testing.T) {
		svc, d := newService(t)
		expected := domain.AddedComment{ID: "comment-123", Content: "abc", Owner: "user-123"}
		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.comments.On("AddComment", ctx, "thread-123", "user-123", domain.NewComment{Content: "abc"}).
			Return(expected, nil).Once()
		d.cache.On("InvalidateThread", ctx, "thread-123").Return(errors.New("redis down")).Once()

		res, err := svc.AddComment(ctx, "thread-123", "user-123", domain.Payload{"content": "abc"})
		require.NoError(t, err)
		assert.Equal(t, expected, res)
	})
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, d := newService(t)
		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.comments.On("VerifyCommentExists", ctx, "thread-123", "comment-123").Return(nil).Once()
		d.comments.On("VerifyCommentOwner", ctx, "comment-123", "user-123").Return(nil).Once()
		d.comments.On("SoftDeleteComment", ctx, "comment-123", "user-123").Return(nil).Once()
		d.cache.On("InvalidateThread", ctx, "thread-123").Return(nil).Once()

		assert.NoError(t, svc.DeleteComment(ctx, "thread-123", "comment-123", "user-123"))
	})

	t.Run("thread not found", func(t *testing.T) {
		svc, d := newService(t)
		d.threads.On("VerifyThreadExists", ctx, "thread-404").Return(notFound(domain.ResourceThread)).Once()

		err := svc.DeleteComment(ctx, "thread-404", "comment-123", "user-123")
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, domain.ResourceThread, nf.Resource)
		d.comments.AssertNotCalled(t, "VerifyCommentExists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("comment not found names the comment", func(t *testing.T) {
		svc, d := newService(t)
		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.comments.On("VerifyCommentExists", ctx, "thread-123", "comment-404").Return(notFound(domain.ResourceComment)).Once()

		err := svc.DeleteComment(ctx, "thread-123", "comment-404", "user-123")
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, domain.ResourceComment, nf.Resource)
		d.comments.AssertNotCalled(t, "SoftDeleteComment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("comment of another thread is not found", func(t *testing.T) {
		svc, d := newService(t)
		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.comments.On("VerifyCommentExists", ctx, "thread-123", "comment-456").Return(notFound(domain.ResourceComment)).Once()

		err := svc.DeleteComment(ctx, "thread-123", "comment-456", "user-123")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.comments.AssertNotCalled(t, "SoftDeleteComment", mock.Anything, mock.Anything, mock.Anything)
		d.cache.AssertNotCalled(t, "InvalidateThread", mock.Anything, mock.Anything)
	})

	t.Run("not the owner", func(t *testing.T) {
		svc, d := newService(t)
		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.comments.On("VerifyCommentExists", ctx, "thread-123", "comment-123").Return(nil).Once()
		d.comments.On("VerifyCommentOwner", ctx, "comment-123", "user-456").
			Return(&domain.ForbiddenError{Resource: domain.ResourceComment}).Once()

		err := svc.DeleteComment(ctx, "thread-123", "comment-123", "user-456")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		d.comments.AssertNotCalled(t, "SoftDeleteComment", mock.Anything, mock.Anything, mock.Anything)
		d.cache.AssertNotCalled(t, "InvalidateThread", mock.Anything, mock.Anything)
	})

	t.Run("ownership changes between check and write", func(t *testing.T) {
		svc, d := newService(t)
		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.comments.On("VerifyCommentExists", ctx, "thread-123", "comment-123").Return(nil).Once()
		d.comments.On("VerifyCommentOwner", ctx, "comment-123", "user-123").Return(nil).Once()
		d.comments.On("SoftDeleteComment", ctx, "comment-123", "user-123").
			Return(&domain.ForbiddenError{Resource: domain.ResourceComment}).Once()

		err := svc.DeleteComment(ctx, "thread-123", "comment-123", "user-123")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestLikeComment(t *testing.T) {
	ctx := context.Background()

	t.Run("like when not liked yet", func(t *testing.T) {
		svc, d := newService(t)
		before := testutil.ToFloat64(likeToggles.WithLabelValues(domain.Like.String()))

		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.expectTx(ctx, nil)
		d.tx.On("VerifyCommentExists", ctx, "thread-123", "comment-123").Return(nil).Once()
		d.tx.On("HasLiked", ctx, "comment-123", "user-123").Return(false, nil).Once()
		d.tx.On("AddLike", ctx, "comment-123", "user-123").Return(nil).Once()
		d.tx.On("IncrementLikeCount", ctx, "comment-123").Return(nil).Once()
		d.cache.On("InvalidateThread", ctx, "thread-123").Return(nil).Once()

		require.NoError(t, svc.LikeComment(ctx, "thread-123", "comment-123", "user-123"))
		d.tx.AssertNotCalled(t, "RemoveLike", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, before+1, testutil.ToFloat64(likeToggles.WithLabelValues(domain.Like.String())))
	})

	t.Run("unlike when already liked", func(t *testing.T) {
		svc, d := newService(t)
		before := testutil.ToFloat64(likeToggles.WithLabelValues(domain.Unlike.String()))

		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.expectTx(ctx, nil)
		d.tx.On("VerifyCommentExists", ctx, "thread-123", "comment-123").Return(nil).Once()
		d.tx.On("HasLiked", ctx, "comment-123", "user-123").Return(true, nil).Once()
		d.tx.On("RemoveLike", ctx, "comment-123", "user-123").Return(nil).Once()
		d.tx.On("DecrementLikeCount", ctx, "comment-123").Return(nil).Once()
		d.cache.On("InvalidateThread", ctx, "thread-123").Return(nil).Once()

		require.NoError(t, svc.LikeComment(ctx, "thread-123", "comment-123", "user-123"))
		d.tx.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, before+1, testutil.ToFloat64(likeToggles.WithLabelValues(domain.Unlike.String())))
	})

	t.Run("thread not found", func(t *testing.T) {
		svc, d := newService(t)
		d.threads.On("VerifyThreadExists", ctx, "thread-404").Return(notFound(domain.ResourceThread)).Once()

		err := svc.LikeComment(ctx, "thread-404", "comment-123", "user-123")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.comments.AssertNotCalled(t, "WithinTransaction", mock.Anything, mock.Anything)
	})

	t.Run("comment not found", func(t *testing.T) {
		svc, d := newService(t)
		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.expectTx(ctx, nil)
		d.tx.On("VerifyCommentExists", ctx, "thread-123", "comment-404").Return(notFound(domain.ResourceComment)).Once()

		err := svc.LikeComment(ctx, "thread-123", "comment-404", "user-123")
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, domain.ResourceComment, nf.Resource)
		d.tx.AssertNotCalled(t, "HasLiked", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("counter failure aborts the transaction", func(t *testing.T) {
		svc, d := newService(t)
		before := testutil.ToFloat64(likeToggles.WithLabelValues(domain.Like.String()))

		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.expectTx(ctx, nil)
		d.tx.On("VerifyCommentExists", ctx, "thread-123", "comment-123").Return(nil).Once()
		d.tx.On("HasLiked", ctx, "comment-123", "user-123").Return(false, nil).Once()
		d.tx.On("AddLike", ctx, "comment-123", "user-123").Return(nil).Once()
		d.tx.On("IncrementLikeCount", ctx, "comment-123").Return(errors.New("deadlock")).Once()

		err := svc.LikeComment(ctx, "thread-123", "comment-123", "user-123")
		assert.EqualError(t, err, "deadlock")
		d.cache.AssertNotCalled(t, "InvalidateThread", mock.Anything, mock.Anything)
		assert.Equal(t, before, testutil.ToFloat64(likeToggles.WithLabelValues(domain.Like.String())))
	})

	t.Run("racing unlike conflicts without touching the counter", func(t *testing.T) {
		svc, d := newService(t)
		before := testutil.ToFloat64(likeToggles.WithLabelValues(domain.Unlike.String()))

		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.expectTx(ctx, nil)
		d.tx.On("VerifyCommentExists", ctx, "thread-123", "comment-123").Return(nil).Once()
		d.tx.On("HasLiked", ctx, "comment-123", "user-123").Return(true, nil).Once()
		d.tx.On("RemoveLike", ctx, "comment-123", "user-123").Return(domain.ErrConflict).Once()

		err := svc.LikeComment(ctx, "thread-123", "comment-123", "user-123")
		assert.ErrorIs(t, err, domain.ErrConflict)
		d.tx.AssertNotCalled(t, "DecrementLikeCount", mock.Anything, mock.Anything)
		d.cache.AssertNotCalled(t, "InvalidateThread", mock.Anything, mock.Anything)
		assert.Equal(t, before, testutil.ToFloat64(likeToggles.WithLabelValues(domain.Unlike.String())))
	})

	t.Run("commit failure", func(t *testing.T) {
		svc, d := newService(t)
		d.threads.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		d.expectTx(ctx, errors.New("commit failed"))
		d.tx.On("VerifyCommentExists", ctx, "thread-123", "comment-123").Return(nil).Once()
		d.tx.On("HasLiked", ctx, "comment-123", "user-123").Return(true, nil).Once()
		d.tx.On("RemoveLike", ctx, "comment-123", "user-123").Return(nil).Once()
		d.tx.On("DecrementLikeCount", ctx, "comment-123").Return(nil).Once()

		assert.EqualError(t, svc.LikeComment(ctx, "thread-123", "comment-123", "user-123"), "commit failed")
	})
}
