package engine

import (
	"fmt"

	"zombiezen.com/go/sqlite"
)

// Conn represents a single connection to a SQLite database.
//
// A Conn is not safe for concurrent use. Callers that share one across
// goroutines must provide their own synchronization.
//
// https://www.sqlite.org/c3ref/sqlite3.html
type Conn struct {
	conn *sqlite.Conn
	path string
}

// Open opens a SQLite database at the given path, creating the file if
// it does not exist. The path ":memory:" opens a private in-memory
// database.
//
// https://www.sqlite.org/c3ref/open.html
func Open(path string) (*Conn, error) {
	conn, err := sqlite.OpenConn(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	return &Conn{conn: conn, path: path}, nil
}

// Close finalizes the connection to the SQLite database. Any statement
// prepared on this connection must be finalized first, otherwise the
// engine reports the connection busy.
//
// https://www.sqlite.org/c3ref/close.html
func (conn *Conn) Close() error {
	if conn.conn == nil {
		return nil
	}
	if err := conn.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	conn.conn = nil
	return nil
}

// Path returns the path this connection was opened with.
func (conn *Conn) Path() string {
	return conn.path
}

// Prepare compiles the given SQL into a prepared statement. Only the
// first statement in the string is compiled; trailing statements are
// ignored, matching sqlite3_prepare_v2 semantics.
//
// https://www.sqlite.org/c3ref/prepare.html
func (conn *Conn) Prepare(query string) (*Stmt, error) {
	stmt, _, err := conn.conn.PrepareTransient(query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	return &Stmt{conn: conn, stmt: stmt}, nil
}

// Exec runs the given SQL from start to finish, discarding any result
// rows. It is intended for statements like BEGIN, COMMIT and PRAGMAs.
func (conn *Conn) Exec(query string) error {
	stmt, err := conn.Prepare(query)
	if err != nil {
		return err
	}
	defer func() {
		_ = stmt.Finalize()
	}()

	for {
		hasRow, err := stmt.Step()
		if err != nil {
			return fmt.Errorf("failed to execute %q: %w", query, err)
		}
		if !hasRow {
			return nil
		}
	}
}

// LastInsertRowID returns the rowid of the most recent successful
// INSERT on this connection.
//
// https://www.sqlite.org/c3ref/last_insert_rowid.html
func (conn *Conn) LastInsertRowID() int64 {
	return conn.conn.LastInsertRowID()
}

// Changes returns the number of rows modified, inserted or deleted by
// the most recently completed INSERT, UPDATE or DELETE statement on
// this connection.
//
// https://www.sqlite.org/c3ref/changes.html
func (conn *Conn) Changes() int64 {
	return int64(conn.conn.Changes())
}
