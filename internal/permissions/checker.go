package permissions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// ErrNotEnoughPermissions is returned when the caller's role lacks a required permission.
var ErrNotEnoughPermissions = errors.New("not enough permissions")

// Checker authorizes a caller against a set of required permission names.
type Checker interface {
	Check(ctx context.Context, userID int64, required ...string) error
}

const cacheKeyPrefix = "perm:user:"

// PGChecker resolves permissions from the role_permissions table, with the
// per-user permission set cached in Redis. A nil Redis client disables caching.
type PGChecker struct {
	db  *pgxpool.Pool
	rdb *redis.Client
	ttl time.Duration
}

// NewPGChecker returns a new PGChecker.
func NewPGChecker(db *pgxpool.Pool, rdb *redis.Client, ttl time.Duration) *PGChecker {
	return &PGChecker{db: db, rdb: rdb, ttl: ttl}
}

// Check succeeds only if the user's role grants every required permission.
func (c *PGChecker) Check(ctx context.Context, userID int64, required ...string) error {
	granted, err := c.grantedFor(ctx, userID)
	if err != nil {
		return err
	}
	for _, p := range required {
		if !granted[p] {
			return fmt.Errorf("%w: missing %q", ErrNotEnoughPermissions, p)
		}
	}
	return nil
}

func (c *PGChecker) grantedFor(ctx context.Context, userID int64) (map[string]bool, error) {
	if c.rdb != nil {
		if perms, ok := c.cached(ctx, userID); ok {
			return perms, nil
		}
	}

	rows, err := c.db.Query(ctx, `
		SELECT rp.permission
		FROM role_permissions rp
		JOIN users u ON u.role = rp.role
		WHERE u.id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		names = append(names, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if c.rdb != nil {
		c.store(ctx, userID, names)
	}
	return toSet(names), nil
}

func (c *PGChecker) cached(ctx context.Context, userID int64) (map[string]bool, bool) {
	b, err := c.rdb.Get(ctx, cacheKeyPrefix+strconv.FormatInt(userID, 10)).Bytes()
	if err != nil {
		return nil, false
	}
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return nil, false
	}
	return toSet(names), true
}

func (c *PGChecker) store(ctx context.Context, userID int64, names []string) {
	b, err := json.Marshal(names)
	if err != nil {
		return
	}
	// Cache write failures only cost a DB round trip next time.
	_ = c.rdb.Set(ctx, cacheKeyPrefix+strconv.FormatInt(userID, 10), b, c.ttl).Err()
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
