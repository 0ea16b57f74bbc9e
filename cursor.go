package gsqlite

import (
	"strings"

	"github.com/gsqlite/gsqlite/internal/engine"
	"github.com/gsqlite/gsqlite/internal/log"
)

// Cursor holds a single prepared statement and its current result
// position. Execute and ExecuteMany rebind and re-execute it; FetchOne
// and FetchAll advance the position.
//
// Cursor state is mutable and not safe for concurrent access.
type Cursor struct {
	conn         *Connection
	stmt         *engine.Stmt
	operation    string
	hasRow       bool
	description  []string
	lastRowID    int64
	hasLastRowID bool
	rowsAffected int64
	arraysize    int
	closed       bool
}

// Connection returns the Connection this cursor belongs to.
func (c *Cursor) Connection() *Connection {
	return c.conn
}

// Execute prepares the given SQL, binds params positionally and
// executes it. The previous statement of this cursor, if any, is
// finalized first.
//
// The number of params must match the number of placeholders in the
// operation, otherwise the call fails with ErrProgramming before
// anything is bound.
func (c *Cursor) Execute(operation string, params ...any) error {
	if err := c.guard(); err != nil {
		return err
	}
	_ = c.finalize()

	stmt, err := c.conn.eng.Prepare(operation)
	if err != nil {
		return wrapErr(ErrProgramming, err)
	}
	c.stmt = stmt
	c.operation = operation

	if err := c.bind(params); err != nil {
		_ = c.finalize()
		return err
	}

	hasRow, err := stmt.Step()
	if err != nil {
		_ = c.finalize()
		return wrapErr(ErrDatabase, err)
	}
	c.hasRow = hasRow

	c.afterExecute()
	return nil
}

// ExecuteMany prepares the given DML statement once, then binds and
// executes it for each parameter tuple in seqOfParams, preserving
// input order. Non-DML statements fail with ErrProgramming.
//
// No atomicity is guaranteed beyond what the engine provides: tuples
// executed before a failure stay applied within the open transaction.
func (c *Cursor) ExecuteMany(operation string, seqOfParams [][]any) error {
	if err := c.guard(); err != nil {
		return err
	}
	if !isDMLOperation(operation) {
		return errf(ErrProgramming, "ExecuteMany can only execute DML statements")
	}
	_ = c.finalize()

	stmt, err := c.conn.eng.Prepare(operation)
	if err != nil {
		return wrapErr(ErrProgramming, err)
	}
	c.stmt = stmt
	c.operation = operation

	var affected int64
	for _, params := range seqOfParams {
		if err := c.bind(params); err != nil {
			return err
		}

		for {
			hasRow, err := stmt.Step()
			if err != nil {
				return wrapErr(ErrDatabase, err)
			}
			if !hasRow {
				break
			}
		}
		affected += c.conn.eng.Changes()

		if err := stmt.Reset(); err != nil {
			return wrapErr(ErrDatabase, err)
		}
		if err := stmt.ClearBindings(); err != nil {
			return wrapErr(ErrDatabase, err)
		}
	}

	c.hasRow = false
	c.description = nil
	c.rowsAffected = affected
	c.updateLastRowID()
	c.conn.stats.writes.Add(int64(len(seqOfParams)))

	c.conn.logger.DebugNs(log.NsCursor, "batch executed", log.KV{
		"connection": c.conn.id,
		"tuples":     len(seqOfParams),
		"affected":   affected,
	})
	return nil
}

// FetchOne returns the next Row of the current result, or nil once the
// result is exhausted. Fetching from an exhausted cursor or after a
// statement that returns no data is not an error.
func (c *Cursor) FetchOne() (Row, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if c.stmt == nil || c.stmt.ColumnCount() == 0 || !c.hasRow {
		return nil, nil
	}

	row := c.currentRow()

	hasRow, err := c.stmt.Step()
	if err != nil {
		c.hasRow = false
		return nil, wrapErr(ErrDatabase, err)
	}
	c.hasRow = hasRow

	c.conn.stats.rowsFetched.Inc()
	return row, nil
}

// FetchMany returns up to size rows. A size below 1 uses the cursor's
// arraysize. Fewer rows are returned when the result runs out.
func (c *Cursor) FetchMany(size int) ([]Row, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if size < 1 {
		size = c.arraysize
	}

	rows := make([]Row, 0, size)
	for len(rows) < size {
		row, err := c.FetchOne()
		if err != nil {
			return nil, err
		}
		if row == nil {
			break
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FetchAll returns all remaining rows, consuming the cursor's position
// to exhaustion. It returns an empty slice, never an error, when there
// is nothing left to fetch.
func (c *Cursor) FetchAll() ([]Row, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}

	rows := []Row{}
	for {
		row, err := c.FetchOne()
		if err != nil {
			return nil, err
		}
		if row == nil {
			return rows, nil
		}
		rows = append(rows, row)
	}
}

// Description returns the column names of the last executed query, or
// nil if the last statement returned no data. The slice is valid until
// the next Execute.
func (c *Cursor) Description() []string {
	return c.description
}

// LastInsertRowID returns the rowid generated by the last INSERT or
// REPLACE executed through this cursor. The second return is false
// after any other statement.
func (c *Cursor) LastInsertRowID() (int64, bool) {
	return c.lastRowID, c.hasLastRowID
}

// RowsAffected returns the number of rows modified by the last DML
// statement, or -1 after a query.
func (c *Cursor) RowsAffected() int64 {
	return c.rowsAffected
}

// ArraySize returns the default number of rows FetchMany returns.
func (c *Cursor) ArraySize() int {
	return c.arraysize
}

// SetArraySize sets the default number of rows FetchMany returns.
// Values below 1 fail with ErrProgramming.
func (c *Cursor) SetArraySize(size int) error {
	if size < 1 {
		return errf(ErrProgramming, "arraysize must be 1 or more")
	}
	c.arraysize = size
	return nil
}

// Close finalizes the cursor's statement and detaches it from its
// connection. Closing an already closed cursor is a no-op.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	delete(c.conn.cursors, c)
	return c.finalize()
}

func (c *Cursor) guard() error {
	if err := c.conn.notClosedGuard(); err != nil {
		return err
	}
	if c.closed {
		return errf(ErrProgramming, "cannot operate on a closed cursor")
	}
	return nil
}

// bind binds params positionally after checking the count against the
// statement's placeholder count.
func (c *Cursor) bind(params []any) error {
	want := c.stmt.BindParamCount()
	if len(params) != want {
		return errf(ErrProgramming, "operation expects %d parameters, got %d", want, len(params))
	}

	for i, param := range params {
		value, err := newBindValue(param)
		if err != nil {
			return err
		}
		c.bindValue(i+1, value)
	}
	return nil
}

func (c *Cursor) bindValue(index int, value Value) {
	switch value.Type() {
	case TypeInteger:
		c.stmt.BindInt64(index, value.Int64())
	case TypeReal:
		c.stmt.BindFloat64(index, value.Real())
	case TypeText:
		c.stmt.BindText(index, value.Text())
	case TypeBlob:
		c.stmt.BindBlob(index, value.Blob())
	default:
		c.stmt.BindNull(index)
	}
}

// afterExecute refreshes the cursor's post-execution state: result
// description, affected rows and last insert rowid.
func (c *Cursor) afterExecute() {
	if c.stmt.ColumnCount() > 0 {
		c.updateDescription()
		c.rowsAffected = -1
		c.hasLastRowID = false
		c.conn.stats.reads.Inc()
	} else {
		c.hasRow = false
		c.description = nil
		c.rowsAffected = c.conn.eng.Changes()
		c.updateLastRowID()
		c.conn.stats.writes.Inc()
	}

	c.conn.logger.DebugNs(log.NsCursor, "statement executed", log.KV{
		"connection": c.conn.id,
		"operation":  operationKeyword(c.operation),
	})
}

func (c *Cursor) updateDescription() {
	count := c.stmt.ColumnCount()
	c.description = make([]string, count)
	for i := range c.description {
		c.description[i] = c.stmt.ColumnName(i)
	}
}

func (c *Cursor) updateLastRowID() {
	switch operationKeyword(c.operation) {
	case "INSERT", "REPLACE":
		c.lastRowID = c.conn.eng.LastInsertRowID()
		c.hasLastRowID = true
	default:
		c.hasLastRowID = false
	}
}

func (c *Cursor) currentRow() Row {
	count := c.stmt.ColumnCount()
	row := make(Row, count)
	for i := range row {
		row[i] = c.columnValue(i)
	}
	return row
}

func (c *Cursor) columnValue(index int) Value {
	switch c.stmt.ColumnType(index) {
	case engine.TypeInteger:
		return Int64(c.stmt.ColumnInt64(index))
	case engine.TypeFloat:
		return Real(c.stmt.ColumnFloat64(index))
	case engine.TypeText:
		return Text(c.stmt.ColumnText(index))
	case engine.TypeBlob:
		return Blob(c.stmt.ColumnBlob(index))
	default:
		return Null()
	}
}

// finalize releases the current statement and resets the result state.
func (c *Cursor) finalize() error {
	c.hasRow = false
	c.description = nil
	c.hasLastRowID = false
	c.rowsAffected = 0

	if c.stmt == nil {
		return nil
	}
	err := c.stmt.Finalize()
	c.stmt = nil
	if err != nil {
		return wrapErr(ErrDatabase, err)
	}
	return nil
}

// operationKeyword returns the first keyword of an SQL operation,
// upper-cased.
func operationKeyword(operation string) string {
	fields := strings.Fields(operation)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// isDMLOperation reports whether the operation is a data manipulation
// statement.
func isDMLOperation(operation string) bool {
	switch operationKeyword(operation) {
	case "INSERT", "UPDATE", "DELETE", "REPLACE":
		return true
	default:
		return false
	}
}
