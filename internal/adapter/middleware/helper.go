package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idem:ledger:"

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

func nowUTC() time.Time { return time.Now().UTC() }

func buildKey(method, route string, customerID uint64, requestID string) string {
	return fmt.Sprintf("%s%s:%s:%d:%s", keyPrefix, strings.ToLower(method), route, customerID, requestID)
}

// parseRequestID accepts a UUID in any canonical form and returns it lower-cased
// with hyphens.
func parseRequestID(raw string) (string, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", errors.New("missing " + HeaderRequestID)
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return "", errors.New("invalid " + HeaderRequestID + " format")
	}
	return id.String(), nil
}

func parseCustomerID(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("missing " + HeaderCustomerID)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + HeaderCustomerID)
	}
	return id, nil
}

// parseRequestAt accepts epoch seconds, epoch milliseconds, or RFC3339 with
// an explicit zone. Timestamps without a zone are rejected.
func parseRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("missing " + HeaderRequestAt)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, errors.New(HeaderRequestAt + " must be epoch (s/ms) or RFC3339 with timezone")
}

func claim(ctx context.Context, rdb *redis.Client, key string, r record) (bool, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return false, err
	}
	return rdb.SetNX(ctx, key, payload, pendingTTL).Result()
}

func load(ctx context.Context, rdb *redis.Client, key string) (record, error) {
	var r record
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return r, err
	}
	err = json.Unmarshal(v, &r)
	return r, err
}

func store(ctx context.Context, rdb *redis.Client, key string, r record, ttl time.Duration) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, payload, ttl).Err()
}
