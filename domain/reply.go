package domain

import (
	"context"
	"time"
)

// NewReply is a validated request to reply to a comment.
type NewReply struct {
	Content string `json:"content"`
}

// NewReplyFromPayload validates a raw payload into a NewReply.
func NewReplyFromPayload(p Payload) (NewReply, error) {
	fields, err := requireStrings("reply", p, "content")
	if err != nil {
		return NewReply{}, err
	}
	return NewReply{Content: fields["content"]}, nil
}

// AddedReply is what the storage hands back after inserting a reply.
type AddedReply struct {
	ID      string `json:"id" validate:"required"`
	Content string `json:"content"`
	Owner   string `json:"owner" validate:"required"`
}

func (a AddedReply) Validate() error {
	return validateStruct("reply", a)
}

type Reply struct {
	ID            string
	Content       string
	CreatedAt     time.Time
	CommentID     string
	OwnerID       string
	OwnerUsername string
	State         DeletionState
}

// RenderedContent returns the tombstone for deleted replies.
func (r Reply) RenderedContent() string {
	if r.State == Deleted {
		return DeletedReplyContent
	}
	return r.Content
}

type ReplyDetail struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

// ReplyRepository defines the contract for reply persistence.
type ReplyRepository interface {
	AddReply(ctx context.Context, commentID, owner string, nr NewReply) (AddedReply, error)

	// VerifyReplyExists returns a NotFoundError naming "reply" if id is
	// unknown or belongs to another comment.
	VerifyReplyExists(ctx context.Context, commentID, id string) error

	// VerifyReplyOwner returns a ForbiddenError if owner did not write the reply.
	VerifyReplyOwner(ctx context.Context, id, owner string) error

	// SoftDeleteReply flags the reply as deleted, only if owned by owner.
	SoftDeleteReply(ctx context.Context, id, owner string) error

	// FetchByCommentID returns the replies of a comment, oldest first.
	FetchByCommentID(ctx context.Context, commentID string) ([]Reply, error)
}

type ReplyUsecase interface {
	AddReply(ctx context.Context, threadID, commentID, owner string, p Payload) (AddedReply, error)
	DeleteReply(ctx context.Context, threadID, commentID, replyID, owner string) error
}
