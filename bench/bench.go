// Package bench builds a trie from a word list, replays a query
// workload against it and reports construction time, heap growth and
// query time, mirroring the classic word/query file protocol: one word
// per line, queries as "<word> i|d|c", one boolean result per query.
package bench

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/rskv-p/trie/pkg/x_trie"
)

var ErrBadQuery = errors.New("malformed query")

//---------------------
// Queries
//---------------------

// Op is a single-letter query operation.
type Op byte

const (
	OpInsert   Op = 'i'
	OpDelete   Op = 'd'
	OpContains Op = 'c'
)

// Query pairs a terminated word with the operation to apply.
type Query struct {
	Word []byte
	Op   Op
}

//---------------------
// Report
//---------------------

// Report is the outcome of one benchmark run.
type Report struct {
	Variant x_trie.Kind
	Words   int
	Queries int

	Build     time.Duration
	Query     time.Duration
	HeapDelta uint64 // bytes retained across construction

	// Results holds one boolean per query, in workload order.
	Results []bool
}

// HeapMB is the construction heap growth in MiB.
func (r *Report) HeapMB() float64 {
	return float64(r.HeapDelta) / (1024 * 1024)
}

//---------------------
// Runner
//---------------------

// Run constructs a trie of the given kind from words, then applies
// queries in order. The alphabet declaration is used by the array
// variant only; empty selects the default.
func Run(kind x_trie.Kind, alphabet string, words [][]byte, queries []Query) (*Report, error) {
	report := &Report{
		Variant: kind,
		Words:   len(words),
		Queries: len(queries),
		Results: make([]bool, 0, len(queries)),
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	tr, err := x_trie.Create(kind, alphabet, words...)
	if err != nil {
		return nil, fmt.Errorf("construct %s trie: %w", kind, err)
	}
	report.Build = time.Since(start)

	runtime.ReadMemStats(&after)
	if after.HeapAlloc > before.HeapAlloc {
		report.HeapDelta = after.HeapAlloc - before.HeapAlloc
	}

	start = time.Now()
	for i, q := range queries {
		var ok bool
		switch q.Op {
		case OpInsert:
			ok, err = tr.Insert(q.Word)
		case OpDelete:
			ok, err = tr.Delete(q.Word)
		case OpContains:
			ok, err = tr.Contains(q.Word)
		default:
			err = fmt.Errorf("%w: op %q", ErrBadQuery, q.Op)
		}
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		report.Results = append(report.Results, ok)
	}
	report.Query = time.Since(start)

	return report, nil
}
