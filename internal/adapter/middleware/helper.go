package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

func nowUTC() time.Time { return time.Now().UTC() }

func buildKey(method, path, actor, key string) string {
	return "idemp:" + strings.ToLower(method) + ":" + path + ":" + actor + ":" + key
}

var reKey = regexp.MustCompile(`^[A-Za-z0-9_.:-]{8,128}$`)

func validKey(k string) bool { return reKey.MatchString(strings.TrimSpace(k)) }

// actorOf scopes keys per admin when the admin header is present.
func actorOf(req *http.Request) string {
	if a := strings.TrimSpace(req.Header.Get(HeaderAdminUsername)); a != "" {
		return "admin:" + a
	}
	return "anon"
}

// ---- Redis helpers ----
func provisionalSet(ctx context.Context, rdb *redis.Client, key string, entry idempEntry) (bool, error) {
	payload, _ := json.Marshal(entry)
	return rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

func loadEntry(ctx context.Context, rdb *redis.Client, key string) (idempEntry, error) {
	var e idempEntry
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	_ = json.Unmarshal(v, &e)
	return e, nil
}

func saveFinal(ctx context.Context, rdb *redis.Client, key string, entry idempEntry, ttl time.Duration) error {
	payload, _ := json.Marshal(entry)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
