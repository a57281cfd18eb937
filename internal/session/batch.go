package session

import (
	"context"
	"sort"
)

// Batch stages writes made inside an atomic section. Reads see staged writes
// first and fall through to the backend otherwise. Backends apply the batch
// only after the section's function succeeded.
type Batch struct {
	read    func(ctx context.Context, key string) (string, error)
	writes  map[string]string
	deletes map[string]struct{}
}

// NewBatch creates a Batch reading uncommitted keys through read, which must
// return ErrKeyNotFound for missing keys.
func NewBatch(read func(ctx context.Context, key string) (string, error)) *Batch {
	return &Batch{
		read:    read,
		writes:  make(map[string]string),
		deletes: make(map[string]struct{}),
	}
}

// Get implements Values.
func (b *Batch) Get(ctx context.Context, key string) (string, error) {
	if v, ok := b.writes[key]; ok {
		return v, nil
	}
	if _, ok := b.deletes[key]; ok {
		return "", ErrKeyNotFound
	}
	return b.read(ctx, key)
}

// Set implements Values.
func (b *Batch) Set(_ context.Context, key, value string) error {
	delete(b.deletes, key)
	b.writes[key] = value
	return nil
}

// Delete implements Values.
func (b *Batch) Delete(_ context.Context, key string) error {
	delete(b.writes, key)
	b.deletes[key] = struct{}{}
	return nil
}

// Empty reports whether the batch has nothing to apply.
func (b *Batch) Empty() bool {
	return len(b.writes) == 0 && len(b.deletes) == 0
}

// Writes returns the staged key/value pairs.
func (b *Batch) Writes() map[string]string {
	return b.writes
}

// Deletes returns the staged deletions in key order.
func (b *Batch) Deletes() []string {
	keys := make([]string, 0, len(b.deletes))
	for k := range b.deletes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
