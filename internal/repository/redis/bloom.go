package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/forum-api/domain"
)

const KeyThreadBloom = "bloom:thread:ids"

// threadBloom keeps the set of known thread ids as a bitmap in one redis
// string. Each id sets hashes bits derived from two base hashes.
type threadBloom struct {
	client *redis.Client
	bits   uint64
	hashes uint64
}

var _ domain.BloomRepository = (*threadBloom)(nil)

func NewRedisBloomRepo(client *redis.Client, bits, hashes uint64) *threadBloom {
	if hashes == 0 {
		hashes = 1
	}
	return &threadBloom{
		client: client,
		bits:   bits,
		hashes: hashes,
	}
}

// positions derives the bit positions of id with double hashing,
// crc32 + i*fnv64a. A zero step would collapse them into one bit.
func (b *threadBloom) positions(id string) []int64 {
	data := []byte(id)
	base := uint64(crc32.ChecksumIEEE(data)) % b.bits
	h := fnv.New64a()
	_, _ = h.Write(data)
	step := h.Sum64() % b.bits
	if step == 0 {
		step = 1
	}

	res := make([]int64, b.hashes)
	for i := range res {
		res[i] = int64((base + uint64(i)*step) % b.bits)
	}
	return res
}

func (b *threadBloom) Add(ctx context.Context, id string) error {
	return b.BulkAdd(ctx, []string{id})
}

func (b *threadBloom) BulkAdd(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := b.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			for _, pos := range b.positions(id) {
				pipe.SetBit(ctx, KeyThreadBloom, pos, 1)
			}
		}
		return nil
	})
	return err
}

func (b *threadBloom) Exists(ctx context.Context, id string) (bool, error) {
	positions := b.positions(id)
	cmds := make([]*redis.IntCmd, len(positions))
	_, err := b.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, pos := range positions {
			cmds[i] = pipe.GetBit(ctx, KeyThreadBloom, pos)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}
