// Package repository contains data access logic separated from HTTP handlers.
// This file stores served /get_pairs requests and aggregates them per mode.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/letter-pairs/internal/model"
)

// maxModeLen matches pair_queries.mode VARCHAR(64), counted in characters.
const maxModeLen = 64

// PairQueryRepo encapsulates all queries against pair_queries.
type PairQueryRepo struct {
	db *sql.DB
}

// NewPairQueryRepo constructs a PairQueryRepo with the provided DB handle.
func NewPairQueryRepo(db *sql.DB) *PairQueryRepo {
	return &PairQueryRepo{db: db}
}

// Create inserts q and sets its ID.  The mode is a raw client path
// segment: invalid UTF-8 is replaced with U+FFFD and the result is cut to
// maxModeLen runes so the insert cannot be rejected by the column.
func (r *PairQueryRepo) Create(ctx context.Context, q *model.PairQuery) error {
	if q.Mode == "" || q.Count < 0 {
		return fmt.Errorf("%w: mode=%q count=%d", ErrInvalidQuery, q.Mode, q.Count)
	}
	q.Mode = normalizeMode(q.Mode)
	if q.ServedAt.IsZero() {
		q.ServedAt = time.Now().UTC()
	}
	const qInsert = "INSERT INTO pair_queries (mode, result_count, found, served_at) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, q.Mode, q.Count, q.Found, q.ServedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	q.ID = uint64(id)
	return nil
}

func normalizeMode(mode string) string {
	mode = strings.ToValidUTF8(mode, "\uFFFD")
	n := 0
	for i := range mode {
		if n == maxModeLen {
			return mode[:i]
		}
		n++
	}
	return mode
}

// ModeStats returns per-mode request and miss counts, busiest mode first.
// limit <= 0 returns every mode.
func (r *PairQueryRepo) ModeStats(ctx context.Context, limit int) ([]model.ModeStat, error) {
	q := `SELECT mode, COUNT(*), SUM(CASE WHEN found = 0 THEN 1 ELSE 0 END), MAX(served_at)
		FROM pair_queries GROUP BY mode ORDER BY COUNT(*) DESC, mode ASC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ModeStat{}
	for rows.Next() {
		var s model.ModeStat
		if err := rows.Scan(&s.Mode, &s.Requests, &s.Misses, &s.LastSeen); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
