package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// lease is the lock object stored in the bucket.
type lease struct {
	Owner     string    `json:"owner"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Lock is a distributed lock built on conditional writes. Acquire creates
// the lock object with If-None-Match; an expired lease is stolen with
// If-Match against the stale ETag, so at most one contender wins.
type Lock struct {
	client *Client
	key    string
	ttl    time.Duration
	owner  string
	etag   string
}

// NewLock creates a lock with a fresh owner ID.
func NewLock(client *Client, key string, ttl time.Duration) *Lock {
	return &Lock{
		client: client,
		key:    key,
		ttl:    ttl,
		owner:  uuid.New().String(),
	}
}

// Owner returns this instance's lock owner ID.
func (l *Lock) Owner() string { return l.owner }

// Acquire tries to take the lock. (false, nil) means another live holder
// has it.
func (l *Lock) Acquire(ctx context.Context) (bool, error) {
	data, err := l.leaseBytes()
	if err != nil {
		return false, err
	}

	created, etag, err := l.client.PutIfAbsent(ctx, l.key, bytes.NewReader(data), "application/json")
	if err != nil {
		return false, fmt.Errorf("acquire lock: %w", err)
	}
	if created {
		l.etag = etag
		return true, nil
	}

	expired, staleETag, err := l.holderExpired(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire lock: %w", err)
	}
	if !expired {
		return false, nil
	}

	data, err = l.leaseBytes()
	if err != nil {
		return false, err
	}
	stolen, newETag, err := l.client.PutIfMatch(ctx, l.key, bytes.NewReader(data), staleETag, "application/json")
	if err != nil {
		return false, fmt.Errorf("acquire lock: steal: %w", err)
	}
	if !stolen {
		return false, nil
	}
	l.etag = newETag
	return true, nil
}

// Renew extends the lease while we still hold it. (false, nil) means the
// lock was lost.
func (l *Lock) Renew(ctx context.Context) (bool, error) {
	if l.etag == "" {
		return false, nil
	}

	data, err := l.leaseBytes()
	if err != nil {
		return false, err
	}
	renewed, newETag, err := l.client.PutIfMatch(ctx, l.key, bytes.NewReader(data), l.etag, "application/json")
	if err != nil {
		return false, fmt.Errorf("renew lock: %w", err)
	}
	if !renewed {
		return false, nil
	}
	l.etag = newETag
	return true, nil
}

// Release deletes the lock object, but only when we still own it. A
// stolen lock is left for the new holder.
func (l *Lock) Release(ctx context.Context) error {
	body, _, err := l.client.Download(ctx, l.key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil
		}
		return fmt.Errorf("release lock: %w", err)
	}
	data, err := io.ReadAll(body)
	body.Close()
	if err != nil {
		return fmt.Errorf("release lock: read: %w", err)
	}

	var current lease
	if err := json.Unmarshal(data, &current); err != nil {
		// Corrupt lock object, clear it.
		return l.client.Delete(ctx, l.key)
	}
	if current.Owner != l.owner {
		return nil
	}
	return l.client.Delete(ctx, l.key)
}

// holderExpired reads the current lease and reports whether it has run
// out. A missing or unreadable lease counts as expired.
func (l *Lock) holderExpired(ctx context.Context) (bool, string, error) {
	body, etag, err := l.client.Download(ctx, l.key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return true, "", nil
		}
		return false, "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return false, "", fmt.Errorf("read lease: %w", err)
	}

	var current lease
	if err := json.Unmarshal(data, &current); err != nil {
		return true, etag, nil
	}
	return time.Now().After(current.ExpiresAt), etag, nil
}

func (l *Lock) leaseBytes() ([]byte, error) {
	data, err := json.Marshal(lease{Owner: l.owner, ExpiresAt: time.Now().Add(l.ttl)})
	if err != nil {
		return nil, fmt.Errorf("marshal lease: %w", err)
	}
	return data, nil
}
