// Package cache provides the file-backed dictionary cache: a SQLite store
// keyed by (lookup_key, source) with per-record freshness policies and
// fetch coalescing under concurrent demand.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/singleflight"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS dictionary_cache (
	lookup_key  TEXT    NOT NULL,
	source      TEXT    NOT NULL,
	payload     BLOB    NOT NULL,
	fetched_at  INTEGER NOT NULL,
	ttl_seconds INTEGER,
	hit_count   INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (lookup_key, source)
);
CREATE INDEX IF NOT EXISTS idx_dictionary_cache_source ON dictionary_cache(source);
`

// Policy is a record's freshness policy. The zero value is PERMANENT: the
// record never expires. Network-backed sources use WithTTL.
type Policy struct {
	ttl time.Duration
}

// Permanent returns the policy for static, version-pinned sources.
func Permanent() Policy { return Policy{} }

// WithTTL returns a time-bounded policy; records older than d are treated
// as absent.
func WithTTL(d time.Duration) Policy { return Policy{ttl: d} }

// IsPermanent reports whether records under this policy never expire.
func (p Policy) IsPermanent() bool { return p.ttl == 0 }

// TTL returns the policy's duration; zero for PERMANENT.
func (p Policy) TTL() time.Duration { return p.ttl }

// Record is one cached lookup.
type Record struct {
	Key        string        `db:"lookup_key"`
	Source     string        `db:"source"`
	Payload    []byte        `db:"payload"`
	FetchedAt  int64         `db:"fetched_at"`
	TTLSeconds sql.NullInt64 `db:"ttl_seconds"`
	HitCount   int64         `db:"hit_count"`
}

// expired reports whether the record's TTL has elapsed at time now.
// PERMANENT records (NULL ttl_seconds) never expire.
func (r *Record) expired(now time.Time) bool {
	if !r.TTLSeconds.Valid {
		return false
	}
	return now.Unix()-r.FetchedAt > r.TTLSeconds.Int64
}

// Stats are cumulative since the store handle was created.
type Stats struct {
	Hits     int64
	Misses   int64
	HitRatio float64
}

// Store is the persistent dictionary cache. Concurrent reads are safe;
// concurrent fetches for the same (key, source) are coalesced so at most
// one underlying fetch runs, and all waiters observe its outcome.
type Store struct {
	db    *sqlx.DB
	group singleflight.Group
	now   func() time.Time
	log   *slog.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock substitutes the time source; tests use it to age records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger substitutes the store's logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open opens (creating if necessary) the cache database at path and ensures
// its schema.
func Open(path string, opts ...Option) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize cache schema: %w", err)
	}

	s := &Store{
		db:  db,
		now: time.Now,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached record for (key, source), or ok=false when no
// record exists or its TTL has elapsed. Expired records are not deleted
// eagerly; the next successful Put overwrites them. A hit increments the
// record's hit counter.
func (s *Store) Get(ctx context.Context, key, source string) (*Record, bool, error) {
	var rec Record
	err := s.db.GetContext(ctx, &rec,
		"SELECT lookup_key, source, payload, fetched_at, ttl_seconds, hit_count FROM dictionary_cache WHERE lookup_key = ? AND source = ?",
		key, source)
	if errors.Is(err, sql.ErrNoRows) {
		s.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache record: %w", err)
	}

	if rec.expired(s.now()) {
		s.misses.Add(1)
		return nil, false, nil
	}

	if _, err := s.db.ExecContext(ctx,
		"UPDATE dictionary_cache SET hit_count = hit_count + 1 WHERE lookup_key = ? AND source = ?",
		key, source); err != nil {
		return nil, false, fmt.Errorf("increment hit count: %w", err)
	}
	rec.HitCount++
	s.hits.Add(1)
	return &rec, true, nil
}

// Put upserts the record for (key, source), resetting fetched_at to now.
// The hit counter survives overwrites so it stays monotonic.
func (s *Store) Put(ctx context.Context, key, source string, payload []byte, policy Policy) error {
	ttl := sql.NullInt64{}
	if !policy.IsPermanent() {
		ttl = sql.NullInt64{Int64: int64(policy.TTL().Seconds()), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO dictionary_cache (lookup_key, source, payload, fetched_at, ttl_seconds, hit_count)
		VALUES (?, ?, ?, ?, ?, 0)
		ON CONFLICT (lookup_key, source) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at,
			ttl_seconds = excluded.ttl_seconds`,
		key, source, payload, s.now().Unix(), ttl)
	if err != nil {
		return fmt.Errorf("upsert cache record: %w", err)
	}
	return nil
}

// GetOrFetch returns the cached payload for (key, source) or, on a miss,
// runs fetch and caches its result under the given policy. Concurrent
// callers for the same (key, source) are coalesced behind a single fetch;
// every waiter receives that fetch's payload or its error. A failed fetch
// writes nothing.
func (s *Store) GetOrFetch(ctx context.Context, key, source string, policy Policy, fetch func(context.Context) ([]byte, error)) ([]byte, error) {
	v, err, _ := s.group.Do(source+"\x00"+key, func() (any, error) {
		// Re-check under the flight: a caller that lost the race to an
		// earlier flight finds the record already cached.
		rec, ok, err := s.Get(ctx, key, source)
		if err != nil {
			return nil, err
		}
		if ok {
			return rec.Payload, nil
		}

		payload, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.Put(ctx, key, source, payload, policy); err != nil {
			return nil, err
		}
		s.log.DebugContext(ctx, "cached fetched payload", "key", key, "source", source)
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Delete removes the record for (key, source). Callers use it to evict
// records whose payload no longer decodes.
func (s *Store) Delete(ctx context.Context, key, source string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM dictionary_cache WHERE lookup_key = ? AND source = ?",
		key, source); err != nil {
		return fmt.Errorf("delete cache record: %w", err)
	}
	return nil
}

// Stats returns the cumulative hit/miss counters for this store handle.
func (s *Store) Stats() Stats {
	hits := s.hits.Load()
	misses := s.misses.Load()
	stats := Stats{Hits: hits, Misses: misses}
	if total := hits + misses; total > 0 {
		stats.HitRatio = float64(hits) / float64(total)
	}
	return stats
}

// CountBySource returns the number of stored records per source, for the
// operator-facing stats command.
func (s *Store) CountBySource(ctx context.Context) (map[string]int64, error) {
	rows := []struct {
		Source string `db:"source"`
		Count  int64  `db:"count"`
	}{}
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT source, COUNT(*) AS count FROM dictionary_cache GROUP BY source ORDER BY source"); err != nil {
		return nil, fmt.Errorf("count cache records: %w", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Source] = r.Count
	}
	return counts, nil
}

// PurgeExpired deletes records whose TTL has elapsed and returns how many
// were removed.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM dictionary_cache WHERE ttl_seconds IS NOT NULL AND fetched_at + ttl_seconds < ?",
		s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("purge expired cache records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count purged records: %w", err)
	}
	return n, nil
}

// Clear deletes every record for the given source, or all records when
// source is empty. It returns how many were removed.
func (s *Store) Clear(ctx context.Context, source string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if source == "" {
		res, err = s.db.ExecContext(ctx, "DELETE FROM dictionary_cache")
	} else {
		res, err = s.db.ExecContext(ctx, "DELETE FROM dictionary_cache WHERE source = ?", source)
	}
	if err != nil {
		return 0, fmt.Errorf("clear cache records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count cleared records: %w", err)
	}
	return n, nil
}
