package domain

import (
	"context"
	"time"
)

// NewThread is a validated request to open a thread.
type NewThread struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewThreadFromPayload validates a raw payload into a NewThread.
func NewThreadFromPayload(p Payload) (NewThread, error) {
	fields, err := requireStrings("thread", p, "title", "body")
	if err != nil {
		return NewThread{}, err
	}
	return NewThread{
		Title: fields["title"],
		Body:  fields["body"],
	}, nil
}

// AddedThread is what the storage hands back after inserting a thread.
type AddedThread struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title"`
	Owner string `json:"owner" validate:"required"`
}

func (a AddedThread) Validate() error {
	return validateStruct("thread", a)
}

// Thread is a stored thread joined with its owner's username.
type Thread struct {
	ID            string
	Title         string
	Body          string
	CreatedAt     time.Time
	OwnerID       string
	OwnerUsername string
}

// ThreadDetail is the assembled, render-ready view of a thread.
type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

// ThreadRepository defines the contract for thread persistence.
type ThreadRepository interface {
	// AddThread stores a thread owned by owner. The storage assigns id and timestamp.
	AddThread(ctx context.Context, owner string, nt NewThread) (AddedThread, error)

	// VerifyThreadExists returns a NotFoundError naming "thread" if id is unknown.
	VerifyThreadExists(ctx context.Context, id string) error

	// GetThreadByID returns the thread with its owner's username.
	GetThreadByID(ctx context.Context, id string) (Thread, error)

	// FetchIDs returns up to limit thread ids greater than cursor, ordered by id.
	FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error)
}

// ThreadCache keeps assembled thread views.
type ThreadCache interface {
	// GetThreadView returns ErrCacheMiss if the view is not cached. expired
	// reports that the view is past its logical expiry and should be rebuilt.
	GetThreadView(ctx context.Context, id string) (view ThreadDetail, expired bool, err error)

	// ThreadVersion returns the invalidation counter of a thread. Read it
	// before assembling a view and pass it to SetThreadView.
	ThreadVersion(ctx context.Context, id string) (int64, error)

	// SetThreadView stores view only if the thread was not invalidated
	// since version was read. stored reports whether it was written.
	SetThreadView(ctx context.Context, view ThreadDetail, version int64) (stored bool, err error)

	// InvalidateThread bumps the version and drops the cached view.
	InvalidateThread(ctx context.Context, id string) error
}

type ThreadUsecase interface {
	AddThread(ctx context.Context, owner string, p Payload) (AddedThread, error)
	GetThread(ctx context.Context, id string) (ThreadDetail, error)
}
