// ABOUTME: Store backed by a NATS JetStream key-value bucket
// ABOUTME: Each Get/Set runs under its own timeout so callers stay synchronous

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const defaultNATSTimeout = 2 * time.Second

var _ Store = (*NATSKV)(nil)

// NATSKV is a Store persisted in a JetStream KV bucket.
type NATSKV struct {
	kv      jetstream.KeyValue
	timeout time.Duration
}

// OpenNATSKV binds (creating when needed) the named bucket on nc.
func OpenNATSKV(ctx context.Context, nc *nats.Conn, bucket string) (*NATSKV, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("creating jetstream: %w", err)
	}
	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "themeswitch selection state",
		History:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("binding KV bucket %q: %w", bucket, err)
	}
	return &NATSKV{kv: kv, timeout: defaultNATSTimeout}, nil
}

// SetTimeout overrides the per-operation timeout (2s by default).
func (s *NATSKV) SetTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

func (s *NATSKV) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	entry, err := s.kv.Get(ctx, key)
	if errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return string(entry.Value()), true, nil
}

func (s *NATSKV) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.kv.Put(ctx, key, []byte(value)); err != nil {
		return fmt.Errorf("kv put %s: %w", key, err)
	}
	return nil
}
