package engine

import (
	"fmt"

	"zombiezen.com/go/sqlite"
)

// Stmt represents a prepared statement in SQLite.
//
// https://www.sqlite.org/c3ref/stmt.html
type Stmt struct {
	conn *Conn
	stmt *sqlite.Stmt
}

// ColumnType is the dynamic type of a result column value.
//
// https://www.sqlite.org/c3ref/c_blob.html
type ColumnType = sqlite.ColumnType

// Dynamic column types as reported by sqlite3_column_type.
const (
	TypeInteger = sqlite.TypeInteger
	TypeFloat   = sqlite.TypeFloat
	TypeText    = sqlite.TypeText
	TypeBlob    = sqlite.TypeBlob
	TypeNull    = sqlite.TypeNull
)

// BindParamCount reports the number of parameter placeholders in the
// statement.
//
// https://www.sqlite.org/c3ref/bind_parameter_count.html
func (stmt *Stmt) BindParamCount() int {
	return stmt.stmt.BindParamCount()
}

// The Bind* methods bind a value to the placeholder at the given
// 1-based index. A bind against an invalid index is reported by the
// next call to Step.
//
// https://www.sqlite.org/c3ref/bind_blob.html

// BindInt64 binds an int64 parameter at the given index.
func (stmt *Stmt) BindInt64(index int, value int64) {
	stmt.stmt.BindInt64(index, value)
}

// BindFloat64 binds a float64 parameter at the given index.
func (stmt *Stmt) BindFloat64(index int, value float64) {
	stmt.stmt.BindFloat(index, value)
}

// BindText binds a string parameter at the given index.
func (stmt *Stmt) BindText(index int, value string) {
	stmt.stmt.BindText(index, value)
}

// BindBlob binds a byte slice parameter at the given index.
func (stmt *Stmt) BindBlob(index int, data []byte) {
	stmt.stmt.BindBytes(index, data)
}

// BindNull binds a NULL value at the given index.
func (stmt *Stmt) BindNull(index int) {
	stmt.stmt.BindNull(index)
}

// Step advances the statement to the next row of data, returning true
// if a new row is available and false once the statement has run to
// completion.
//
// https://www.sqlite.org/c3ref/step.html
func (stmt *Stmt) Step() (bool, error) {
	hasRow, err := stmt.stmt.Step()
	if err != nil {
		return false, fmt.Errorf("failed to step statement: %w", err)
	}
	return hasRow, nil
}

// Reset rewinds the statement so it can be executed again. Bound
// values are kept until ClearBindings is called.
//
// https://www.sqlite.org/c3ref/reset.html
func (stmt *Stmt) Reset() error {
	if err := stmt.stmt.Reset(); err != nil {
		return fmt.Errorf("failed to reset statement: %w", err)
	}
	return nil
}

// ClearBindings clears all bound parameter values on the statement.
//
// https://www.sqlite.org/c3ref/clear_bindings.html
func (stmt *Stmt) ClearBindings() error {
	if err := stmt.stmt.ClearBindings(); err != nil {
		return fmt.Errorf("failed to clear bindings: %w", err)
	}
	return nil
}

// ColumnCount returns the number of columns produced by the statement.
// It is zero for statements that return no data.
//
// https://www.sqlite.org/c3ref/column_count.html
func (stmt *Stmt) ColumnCount() int {
	return stmt.stmt.ColumnCount()
}

// ColumnName returns the name of the column at the given index.
//
// https://www.sqlite.org/c3ref/column_name.html
func (stmt *Stmt) ColumnName(colIndex int) string {
	return stmt.stmt.ColumnName(colIndex)
}

// ColumnType returns the dynamic type of the column value in the
// current row. SQLite is loosely typed, so the type can vary between
// rows of the same column.
//
// https://www.sqlite.org/c3ref/column_blob.html
func (stmt *Stmt) ColumnType(colIndex int) ColumnType {
	return stmt.stmt.ColumnType(colIndex)
}

// ColumnInt64 returns the column value at the given index as int64.
func (stmt *Stmt) ColumnInt64(colIndex int) int64 {
	return stmt.stmt.ColumnInt64(colIndex)
}

// ColumnFloat64 returns the column value at the given index as float64.
func (stmt *Stmt) ColumnFloat64(colIndex int) float64 {
	return stmt.stmt.ColumnFloat(colIndex)
}

// ColumnText returns the column value at the given index as a string.
func (stmt *Stmt) ColumnText(colIndex int) string {
	return stmt.stmt.ColumnText(colIndex)
}

// ColumnBlob returns a copy of the column value at the given index as
// a byte slice.
func (stmt *Stmt) ColumnBlob(colIndex int) []byte {
	size := stmt.stmt.ColumnLen(colIndex)
	if size <= 0 {
		return nil
	}
	buf := make([]byte, size)
	stmt.stmt.ColumnBytes(colIndex, buf)
	return buf
}

// Finalize frees the resources associated with this statement.
//
// https://www.sqlite.org/c3ref/finalize.html
func (stmt *Stmt) Finalize() error {
	if stmt.stmt == nil {
		return nil
	}
	if err := stmt.stmt.Finalize(); err != nil {
		stmt.stmt = nil
		return fmt.Errorf("failed to finalize statement: %w", err)
	}
	stmt.stmt = nil
	return nil
}
