package domain

import "context"

// BloomRepository answers "might this thread id exist" without touching the database.
type BloomRepository interface {
	Add(ctx context.Context, id string) error

	// Exists has no false negatives. false means the thread was never added,
	// true still needs a database lookup.
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd adds ids in one round trip, used to warm the filter at startup.
	BulkAdd(ctx context.Context, ids []string) error
}
