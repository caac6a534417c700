package repository

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

const bloomWarmUpBatch = 1000

// threadRepository 协调层，在数据库前面挂一个布隆过滤器
type threadRepository struct {
	db    domain.ThreadRepository
	bloom domain.BloomRepository

	// trusted is false until the filter holds every thread id; while false
	// a negative answer from the filter is not believed.
	trusted atomic.Bool
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository 创建协调层repository
func NewThreadRepository(db domain.ThreadRepository, bloom domain.BloomRepository) *threadRepository {
	return &threadRepository{
		db:    db,
		bloom: bloom,
	}
}

// InitBloomFilter loads every stored thread id into the filter.
func (r *threadRepository) InitBloomFilter(ctx context.Context) error {
	cursor := ""
	for {
		ids, err := r.db.FetchIDs(ctx, cursor, bloomWarmUpBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := r.bloom.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
		if len(ids) < bloomWarmUpBatch {
			break
		}
	}
	r.trusted.Store(true)
	return nil
}

func (r *threadRepository) AddThread(ctx context.Context, owner string, nt domain.NewThread) (domain.AddedThread, error) {
	added, err := r.db.AddThread(ctx, owner, nt)
	if err != nil {
		return domain.AddedThread{}, err
	}

	if err := r.bloom.Add(ctx, added.ID); err != nil {
		logrus.Warnf("failed to add thread %s to bloom filter, filter disabled: %v", added.ID, err)
		r.trusted.Store(false)
	}
	return added, nil
}

func (r *threadRepository) VerifyThreadExists(ctx context.Context, id string) error {
	if r.trusted.Load() {
		exists, err := r.bloom.Exists(ctx, id)
		if err != nil {
			logrus.Warnf("bloom filter lookup failed for thread %s: %v", id, err)
		} else if !exists {
			return &domain.NotFoundError{Resource: domain.ResourceThread}
		}
	}
	return r.db.VerifyThreadExists(ctx, id)
}

func (r *threadRepository) GetThreadByID(ctx context.Context, id string) (domain.Thread, error) {
	return r.db.GetThreadByID(ctx, id)
}

func (r *threadRepository) FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}
