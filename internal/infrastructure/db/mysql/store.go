package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/murahjaya/inventory-system/internal/api/metrics"
	"github.com/murahjaya/inventory-system/internal/core/domain"
)

// ErrNoRows is returned by QueryRow when the statement matched nothing.
var ErrNoRows = sql.ErrNoRows

// Scanner is the scan surface shared by single-row and multi-row reads.
type Scanner interface {
	Scan(dest ...any) error
}

// Rows is the iteration surface handed to Query callbacks.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Conn is one backend connection handle. ExecContext reports affected rows.
type Conn interface {
	PingContext(ctx context.Context) error
	ExecContext(ctx context.Context, query string, args ...any) (int64, error)
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
	Close() error
}

// DialFunc establishes a fresh backend connection.
type DialFunc func(ctx context.Context) (Conn, error)

// Store owns a single lazily-dialed connection handle shared by all callers and
// hides one class of failure from them: a stale or dropped connection. Before a
// statement runs, the handle is liveness-probed (or dialed when absent); when a
// statement fails with a connectivity-class error, the handle is replaced and
// the statement retried exactly once. A second failure surfaces
// domain.ErrUnavailable. Non-connectivity errors propagate on the first attempt.
//
// The mutex makes handle replacement atomic for concurrent callers; it is held
// for one statement's round trip, never across statements.
type Store struct {
	mu   sync.Mutex
	conn Conn
	dial DialFunc
	log  zerolog.Logger
}

// NewStore builds a Store around dial. The first connection is established on
// first use, not here.
func NewStore(dial DialFunc, log zerolog.Logger) *Store {
	return &Store{dial: dial, log: log}
}

// Exec runs a mutating statement and returns the affected row count.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conn, err := s.ensureConn(ctx)
	if err != nil {
		return 0, unavailable(err)
	}

	n, err := conn.ExecContext(ctx, query, args...)
	if err == nil {
		return n, nil
	}
	if !isConnErr(err) {
		return 0, translateErr(err)
	}

	conn, err = s.recycle(ctx, err)
	if err != nil {
		return 0, err
	}
	n, err = conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.afterRetry(err)
	}
	metrics.StoreRetriesTotal.WithLabelValues("success").Inc()
	return n, nil
}

// QueryRow runs a statement expected to match at most one row and passes the
// row to scan. It returns ErrNoRows when nothing matched.
func (s *Store) QueryRow(ctx context.Context, query string, args []any, scan func(Scanner) error) error {
	return s.Query(ctx, query, args, func(rows Rows) error {
		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return err
			}
			return ErrNoRows
		}
		return scan(rows)
	})
}

// Query runs a statement and hands the resulting rows to fn. Rows are closed
// when fn returns; fn must not retain them.
func (s *Store) Query(ctx context.Context, query string, args []any, fn func(Rows) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conn, err := s.ensureConn(ctx)
	if err != nil {
		return unavailable(err)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		if !isConnErr(err) {
			return translateErr(err)
		}
		conn, err = s.recycle(ctx, err)
		if err != nil {
			return err
		}
		rows, err = conn.QueryContext(ctx, query, args...)
		if err != nil {
			return s.afterRetry(err)
		}
		metrics.StoreRetriesTotal.WithLabelValues("success").Inc()
	}
	defer rows.Close()

	if err := fn(rows); err != nil {
		return err
	}
	return rows.Err()
}

// Ping verifies a live backend connection can be obtained, dialing if needed.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.ensureConn(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}

// Close releases the held connection, if any. The store remains usable and will
// lazily reconnect on the next operation.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

// ensureConn returns a live connection, dialing lazily and replacing a handle
// that fails its liveness probe. Callers hold s.mu.
func (s *Store) ensureConn(ctx context.Context) (Conn, error) {
	if s.conn != nil {
		if err := s.conn.PingContext(ctx); err == nil {
			return s.conn, nil
		}
		s.log.Warn().Msg("backend connection failed liveness probe, reconnecting")
		_ = s.closeLocked()
	}

	conn, err := s.dial(ctx)
	if err != nil {
		return nil, err
	}
	metrics.StoreReconnectsTotal.Inc()
	s.conn = conn
	return conn, nil
}

// recycle discards the broken handle and dials a replacement for the single
// permitted retry. Callers hold s.mu.
func (s *Store) recycle(ctx context.Context, cause error) (Conn, error) {
	s.log.Warn().Err(cause).Msg("statement hit broken connection, retrying once on a fresh one")
	_ = s.closeLocked()

	conn, err := s.dial(ctx)
	if err != nil {
		metrics.StoreRetriesTotal.WithLabelValues("failure").Inc()
		return nil, unavailable(err)
	}
	metrics.StoreReconnectsTotal.Inc()
	s.conn = conn
	return conn, nil
}

// afterRetry classifies the error from the one permitted retry. A second
// connectivity failure becomes the transient-store error; anything else is a
// real statement error and propagates as such.
func (s *Store) afterRetry(err error) error {
	if isConnErr(err) {
		_ = s.closeLocked()
		metrics.StoreRetriesTotal.WithLabelValues("failure").Inc()
		return unavailable(err)
	}
	return translateErr(err)
}

func (s *Store) closeLocked() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func unavailable(cause error) error {
	return fmt.Errorf("%w: %v", domain.ErrUnavailable, cause)
}
