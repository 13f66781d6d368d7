package model

import "time"

// PairQuery is one served /get_pairs request as recorded in the
// `pair_queries` table.  Rows are written by the queue consumer, never by
// the request path itself.
//
// Fields:
//  ID        – primary key identifier.
//  Mode      – the mode path segment as the client sent it.
//  Count     – number of pairs returned.
//  Found     – false when the mode named a missing bucket.
//  ServedAt  – when the response was produced.
type PairQuery struct {
	ID       uint64    // pair_queries.id
	Mode     string    // pair_queries.mode
	Count    int       // pair_queries.result_count
	Found    bool      // pair_queries.found
	ServedAt time.Time // pair_queries.served_at
}

// ModeStat aggregates PairQuery rows for a single mode.
type ModeStat struct {
	Mode     string    `json:"mode"`
	Requests uint64    `json:"requests"`
	Misses   uint64    `json:"misses"`
	LastSeen time.Time `json:"last_seen"`
}
