package domain

import (
	"context"
	"time"
)

const (
	// DeletedCommentContent replaces the content of a soft-deleted comment.
	DeletedCommentContent = "**komentar telah dihapus**"
	// DeletedReplyContent replaces the content of a soft-deleted reply.
	DeletedReplyContent = "**balasan telah dihapus**"
)

// DeletionState is the soft-delete flag of a comment or reply.
type DeletionState int8

const (
	Active DeletionState = iota
	Deleted
)

// DeletionStateOf maps the nullable storage flag; NULL and false are both Active.
func DeletionStateOf(isDeleted *bool) DeletionState {
	if isDeleted != nil && *isDeleted {
		return Deleted
	}
	return Active
}

func (s DeletionState) String() string {
	if s == Deleted {
		return "DELETED"
	}
	return "ACTIVE"
}

// NewComment is a validated request to comment on a thread.
type NewComment struct {
	Content string `json:"content"`
}

// NewCommentFromPayload validates a raw payload into a NewComment.
func NewCommentFromPayload(p Payload) (NewComment, error) {
	fields, err := requireStrings("comment", p, "content")
	if err != nil {
		return NewComment{}, err
	}
	return NewComment{Content: fields["content"]}, nil
}

// AddedComment is what the storage hands back after inserting a comment.
type AddedComment struct {
	ID      string `json:"id" validate:"required"`
	Content string `json:"content"`
	Owner   string `json:"owner" validate:"required"`
}

func (a AddedComment) Validate() error {
	return validateStruct("comment", a)
}

// Comment is a stored comment joined with its owner's username.
type Comment struct {
	ID            string
	Content       string
	CreatedAt     time.Time
	ThreadID      string
	OwnerID       string
	OwnerUsername string
	State         DeletionState
	LikeCount     int64
}

// RenderedContent returns the tombstone for deleted comments.
func (c Comment) RenderedContent() string {
	if c.State == Deleted {
		return DeletedCommentContent
	}
	return c.Content
}

// CommentDetail is a comment as it appears inside a ThreadDetail.
type CommentDetail struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	LikeCount int64         `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

// CommentRepository defines the contract for comment and like persistence.
type CommentRepository interface {
	AddComment(ctx context.Context, threadID, owner string, nc NewComment) (AddedComment, error)

	// VerifyCommentExists returns a NotFoundError naming "comment" if id is
	// unknown or was posted on another thread.
	VerifyCommentExists(ctx context.Context, threadID, id string) error

	// VerifyCommentOwner returns a ForbiddenError if owner did not write the comment.
	VerifyCommentOwner(ctx context.Context, id, owner string) error

	// SoftDeleteComment flags the comment as deleted. It only touches a row
	// owned by owner and returns a ForbiddenError otherwise.
	SoftDeleteComment(ctx context.Context, id, owner string) error

	// FetchByThreadID returns the comments of a thread, oldest first.
	FetchByThreadID(ctx context.Context, threadID string) ([]Comment, error)

	HasLiked(ctx context.Context, commentID, owner string) (bool, error)
	AddLike(ctx context.Context, commentID, owner string) error
	// RemoveLike returns ErrConflict when no like was removed.
	RemoveLike(ctx context.Context, commentID, owner string) error
	IncrementLikeCount(ctx context.Context, commentID string) error
	// DecrementLikeCount returns ErrConflict when the counter is already zero.
	DecrementLikeCount(ctx context.Context, commentID string) error

	// WithinTransaction runs fn against a repository bound to one storage
	// transaction. fn's writes are committed together or not at all.
	WithinTransaction(ctx context.Context, fn func(repo CommentRepository) error) error

	// ReconcileLikeCounts rewrites like counts that drifted from the like
	// relation. It returns how many comments were repaired and the ids of
	// the threads they belong to.
	ReconcileLikeCounts(ctx context.Context) (int64, []string, error)
}

type CommentUsecase interface {
	AddComment(ctx context.Context, threadID, owner string, p Payload) (AddedComment, error)
	DeleteComment(ctx context.Context, threadID, commentID, owner string) error
	LikeComment(ctx context.Context, threadID, commentID, owner string) error
}
