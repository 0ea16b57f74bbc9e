// Package gsqlite provides database access to SQLite in the classic
// connect/cursor/execute/fetch shape: open a Connection, allocate a
// Cursor, Execute statements with positional ? parameters and Fetch
// the resulting rows as tagged values.
//
// The package owns only the contract layer. SQL parsing, storage,
// indexing and transaction logic belong to the SQLite engine, reached
// through a narrow prepare/bind/step/column interface.
package gsqlite

const (
	// InMemory is the target understood by Connect as a private
	// in-memory database.
	InMemory = ":memory:"

	// APILevel is the database API shape this package follows.
	APILevel = "2.0"

	// ParamStyle describes the placeholder syntax: positional
	// question marks.
	ParamStyle = "qmark"
)

// SQLiteVersion reports the version of the underlying SQLite engine,
// queried through the binding itself.
func SQLiteVersion() (string, error) {
	conn, err := Connect(InMemory)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = conn.Close()
	}()

	cursor, err := conn.Cursor()
	if err != nil {
		return "", err
	}
	if err := cursor.Execute("SELECT sqlite_version()"); err != nil {
		return "", err
	}

	row, err := cursor.FetchOne()
	if err != nil {
		return "", err
	}
	if len(row) != 1 {
		return "", errf(ErrDatabase, "engine returned no version row")
	}
	return row[0].Text(), nil
}
