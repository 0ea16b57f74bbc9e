package gsqlite

import (
	"io"

	"github.com/google/uuid"
	"github.com/gsqlite/gsqlite/internal/engine"
	"github.com/gsqlite/gsqlite/internal/log"
	"github.com/gsqlite/gsqlite/internal/util/syncutil"
)

// Connection is a handle to an open database session. It owns the
// cursors allocated from it; none of them may be used once the
// connection is closed.
//
// A Connection is not safe for concurrent use from multiple
// goroutines. Each goroutine should own its own Connection.
type Connection struct {
	id      string
	eng     *engine.Conn
	logger  log.Logger
	closed  *syncutil.Atomic[bool]
	cursors map[*Cursor]struct{}
	stats   connStats
}

type connStats struct {
	reads       syncutil.Counter
	writes      syncutil.Counter
	rowsFetched syncutil.Counter
	commits     syncutil.Counter
	rollbacks   syncutil.Counter
}

// Stats is a snapshot of the usage counters of a Connection.
type Stats struct {
	Reads       int64
	Writes      int64
	RowsFetched int64
	Commits     int64
	Rollbacks   int64
}

type connOptions struct {
	logWriter io.Writer
	pragmas   []string
}

// Option configures a Connection at Connect time.
type Option func(*connOptions)

// WithLogWriter makes the connection emit structured JSON logs to the
// given writer. Logging is off by default.
func WithLogWriter(w io.Writer) Option {
	return func(o *connOptions) {
		o.logWriter = w
	}
}

// WithPragmas sets PRAGMA statements to be executed right after the
// session is opened, before the implicit transaction starts.
func WithPragmas(pragmas ...string) Option {
	return func(o *connOptions) {
		o.pragmas = append(o.pragmas, pragmas...)
	}
}

// Connect opens a session against target, which is either a file path
// or InMemory. The file is created if it does not exist.
//
// The session runs with autocommit off: a transaction is opened
// immediately and after every Commit or Rollback. Changes are only
// persisted by Commit; Close discards pending changes.
func Connect(target string, opts ...Option) (*Connection, error) {
	if target == "" {
		target = InMemory
	}

	options := connOptions{logWriter: io.Discard}
	for _, opt := range opts {
		opt(&options)
	}

	eng, err := engine.Open(target)
	if err != nil {
		return nil, wrapErr(ErrConnection, err)
	}

	for _, pragma := range options.pragmas {
		if err := eng.Exec(pragma); err != nil {
			_ = eng.Close()
			return nil, errf(ErrConnection, "failed to execute %q post-connect pragma: %v", pragma, err)
		}
	}

	if err := eng.Exec("BEGIN"); err != nil {
		_ = eng.Close()
		return nil, wrapErr(ErrConnection, err)
	}

	conn := &Connection{
		id:      uuid.NewString(),
		eng:     eng,
		logger:  log.NewLogger(options.logWriter),
		closed:  syncutil.NewAtomic(false),
		cursors: make(map[*Cursor]struct{}),
	}

	conn.logger.InfoNs(log.NsConnection, "session opened", log.KV{
		"connection": conn.id,
		"target":     target,
	})
	return conn, nil
}

// Cursor allocates a new Cursor bound to this connection.
func (conn *Connection) Cursor() (*Cursor, error) {
	if err := conn.notClosedGuard(); err != nil {
		return nil, err
	}

	cursor := &Cursor{conn: conn, arraysize: 1}
	conn.cursors[cursor] = struct{}{}
	return cursor, nil
}

// Commit persists the pending transaction and opens a new one.
func (conn *Connection) Commit() error {
	if err := conn.notClosedGuard(); err != nil {
		return err
	}
	if err := conn.eng.Exec("COMMIT"); err != nil {
		return wrapErr(ErrDatabase, err)
	}
	if err := conn.eng.Exec("BEGIN"); err != nil {
		return wrapErr(ErrDatabase, err)
	}

	conn.stats.commits.Inc()
	conn.logger.DebugNs(log.NsConnection, "transaction committed", log.KV{
		"connection": conn.id,
	})
	return nil
}

// Rollback discards the pending transaction and opens a new one.
func (conn *Connection) Rollback() error {
	if err := conn.notClosedGuard(); err != nil {
		return err
	}
	if err := conn.eng.Exec("ROLLBACK"); err != nil {
		return wrapErr(ErrDatabase, err)
	}
	if err := conn.eng.Exec("BEGIN"); err != nil {
		return wrapErr(ErrDatabase, err)
	}

	conn.stats.rollbacks.Inc()
	conn.logger.DebugNs(log.NsConnection, "transaction rolled back", log.KV{
		"connection": conn.id,
	})
	return nil
}

// Close rolls back the pending transaction, finalizes every cursor
// allocated from this connection and releases the session. Any use of
// the connection or its cursors afterwards fails with ErrProgramming.
func (conn *Connection) Close() error {
	if err := conn.notClosedGuard(); err != nil {
		return err
	}

	if err := conn.eng.Exec("ROLLBACK"); err != nil {
		conn.logger.WarnNs(log.NsConnection, "rollback on close failed", log.KV{
			"connection": conn.id,
			"error":      err.Error(),
		})
	}

	// Unfinalized statements keep the engine session busy.
	for cursor := range conn.cursors {
		cursor.closed = true
		_ = cursor.finalize()
	}
	clear(conn.cursors)

	conn.closed.Store(true)
	if err := conn.eng.Close(); err != nil {
		return wrapErr(ErrConnection, err)
	}

	conn.logger.InfoNs(log.NsConnection, "session closed", log.KV{
		"connection": conn.id,
	})
	return nil
}

// Stats returns a snapshot of the usage counters of this connection.
func (conn *Connection) Stats() Stats {
	return Stats{
		Reads:       conn.stats.reads.Load(),
		Writes:      conn.stats.writes.Load(),
		RowsFetched: conn.stats.rowsFetched.Load(),
		Commits:     conn.stats.commits.Load(),
		Rollbacks:   conn.stats.rollbacks.Load(),
	}
}

func (conn *Connection) notClosedGuard() error {
	if conn.closed.Load() {
		return errf(ErrProgramming, "cannot operate on a closed database")
	}
	return nil
}
