package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// CookieSource hands out the credential material used to authenticate
// upstream requests. The material is read-only for the gateway; refreshing it
// is someone else's job.
type CookieSource interface {
	// Open writes the current cookie jar to a private temp file and returns
	// its path. The caller must invoke cleanup when done.
	Open(ctx context.Context) (path string, cleanup func(), err error)
	// Check reports whether cookies are currently available.
	Check(ctx context.Context) error
}

// FileCookies reads a Netscape cookies file from disk.
type FileCookies struct {
	Path string
}

func (f FileCookies) Open(ctx context.Context) (string, func(), error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", nil, fmt.Errorf("cookies unavailable: %w", err)
	}
	return writeCookieJar(data)
}

func (f FileCookies) Check(ctx context.Context) error {
	if _, err := os.Stat(f.Path); err != nil {
		return fmt.Errorf("cookies unavailable: %w", err)
	}
	return nil
}

// RedisCookies reads the cookie jar text from a Redis key kept fresh by an
// external refresher.
type RedisCookies struct {
	rdb *redis.Client
	key string
}

func NewRedisCookies(rdb *redis.Client, key string) *RedisCookies {
	return &RedisCookies{rdb: rdb, key: key}
}

func (r *RedisCookies) Open(ctx context.Context) (string, func(), error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", nil, fmt.Errorf("cookies unavailable: key %q not set", r.key)
	}
	if err != nil {
		return "", nil, fmt.Errorf("cookies unavailable: %w", err)
	}
	return writeCookieJar(data)
}

func (r *RedisCookies) Check(ctx context.Context) error {
	n, err := r.rdb.Exists(ctx, r.key).Result()
	if err != nil {
		return fmt.Errorf("cookies unavailable: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("cookies unavailable: key %q not set", r.key)
	}
	return nil
}

// writeCookieJar copies the jar so the engine's cookie write-back lands in a
// throwaway file instead of the shared material.
func writeCookieJar(data []byte) (string, func(), error) {
	f, err := os.CreateTemp("", "cookies-*.txt")
	if err != nil {
		return "", nil, fmt.Errorf("cookies unavailable: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.Write(data); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("cookies unavailable: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("cookies unavailable: %w", err)
	}
	return path, cleanup, nil
}
