package gsqlite

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("InMemory", func(t *testing.T) {
		conn, err := Connect(InMemory)
		require.NoError(t, err)
		assert.NoError(t, conn.Close())
	})

	t.Run("EmptyTargetDefaultsToInMemory", func(t *testing.T) {
		conn, err := Connect("")
		require.NoError(t, err)
		assert.NoError(t, conn.Close())
	})

	t.Run("FileTarget", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.sqlite")
		conn, err := Connect(path)
		require.NoError(t, err)
		defer conn.Close()

		assert.FileExists(t, path)
	})

	t.Run("BadTarget", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no-such-dir", "test.sqlite")
		conn, err := Connect(path)
		assert.ErrorIs(t, err, ErrConnection)
		assert.Nil(t, conn)
	})

	t.Run("BadPragma", func(t *testing.T) {
		conn, err := Connect(InMemory, WithPragmas("PRAGMA nonsense ="))
		assert.ErrorIs(t, err, ErrConnection)
		assert.Nil(t, conn)
	})
}

func TestConnectionClosedGuards(t *testing.T) {
	conn, err := Connect(InMemory)
	require.NoError(t, err)

	cursor, err := conn.Cursor()
	require.NoError(t, err)

	require.NoError(t, conn.Close())

	t.Run("Cursor", func(t *testing.T) {
		_, err := conn.Cursor()
		assert.ErrorIs(t, err, ErrProgramming)
	})

	t.Run("Commit", func(t *testing.T) {
		assert.ErrorIs(t, conn.Commit(), ErrProgramming)
	})

	t.Run("Rollback", func(t *testing.T) {
		assert.ErrorIs(t, conn.Rollback(), ErrProgramming)
	})

	t.Run("DoubleClose", func(t *testing.T) {
		assert.ErrorIs(t, conn.Close(), ErrProgramming)
	})

	t.Run("ExistingCursor", func(t *testing.T) {
		err := cursor.Execute("SELECT 1")
		assert.ErrorIs(t, err, ErrProgramming)
	})
}

func TestConnectionCommitPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")

	conn1, err := Connect(path)
	require.NoError(t, err)

	cursor1, err := conn1.Cursor()
	require.NoError(t, err)
	require.NoError(t, cursor1.Execute("CREATE TABLE users (id, name)"))
	require.NoError(t, cursor1.ExecuteMany("INSERT INTO users VALUES (?, ?)", [][]any{
		{1, "George"},
		{2, "Solomia"},
	}))
	require.NoError(t, conn1.Commit())
	require.NoError(t, conn1.Close())

	conn2, err := Connect(path)
	require.NoError(t, err)
	defer conn2.Close()

	cursor2, err := conn2.Cursor()
	require.NoError(t, err)
	require.NoError(t, cursor2.Execute("SELECT * FROM users"))
	rows, err := cursor2.FetchAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestConnectionRollbackDiscards(t *testing.T) {
	conn, err := Connect(InMemory)
	require.NoError(t, err)
	defer conn.Close()

	cursor, err := conn.Cursor()
	require.NoError(t, err)
	require.NoError(t, cursor.Execute("CREATE TABLE users (id, name)"))
	require.NoError(t, conn.Commit())

	require.NoError(t, cursor.Execute("INSERT INTO users VALUES (1, 'George')"))
	require.NoError(t, conn.Rollback())

	require.NoError(t, cursor.Execute("SELECT * FROM users"))
	rows, err := cursor.FetchAll()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestConnectionCloseRollsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")

	conn1, err := Connect(path)
	require.NoError(t, err)

	cursor1, err := conn1.Cursor()
	require.NoError(t, err)
	require.NoError(t, cursor1.Execute("CREATE TABLE users (id, name)"))
	require.NoError(t, conn1.Commit())

	// Left uncommitted on purpose.
	require.NoError(t, cursor1.Execute("INSERT INTO users VALUES (1, 'George')"))
	require.NoError(t, conn1.Close())

	conn2, err := Connect(path)
	require.NoError(t, err)
	defer conn2.Close()

	cursor2, err := conn2.Cursor()
	require.NoError(t, err)
	require.NoError(t, cursor2.Execute("SELECT * FROM users"))
	rows, err := cursor2.FetchAll()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestConnectionStats(t *testing.T) {
	conn, err := Connect(InMemory)
	require.NoError(t, err)
	defer conn.Close()

	cursor, err := conn.Cursor()
	require.NoError(t, err)
	require.NoError(t, cursor.Execute("CREATE TABLE users (id, name)"))
	require.NoError(t, cursor.ExecuteMany("INSERT INTO users VALUES (?, ?)", [][]any{
		{1, "George"},
		{2, "Solomia"},
	}))
	require.NoError(t, conn.Commit())

	require.NoError(t, cursor.Execute("SELECT * FROM users"))
	_, err = cursor.FetchAll()
	require.NoError(t, err)
	require.NoError(t, conn.Rollback())

	stats := conn.Stats()
	assert.Equal(t, int64(1), stats.Reads)
	assert.Equal(t, int64(3), stats.Writes) // CREATE TABLE plus two inserted tuples
	assert.Equal(t, int64(2), stats.RowsFetched)
	assert.Equal(t, int64(1), stats.Commits)
	assert.Equal(t, int64(1), stats.Rollbacks)
}

func TestConnectionWithPragmas(t *testing.T) {
	conn, err := Connect(InMemory, WithPragmas("PRAGMA user_version = 7"))
	require.NoError(t, err)
	defer conn.Close()

	cursor, err := conn.Cursor()
	require.NoError(t, err)
	require.NoError(t, cursor.Execute("PRAGMA user_version"))
	row, err := cursor.FetchOne()
	require.NoError(t, err)
	assert.Equal(t, Row{Int64(7)}, row)
}

func TestConnectionWithLogWriter(t *testing.T) {
	var buf bytes.Buffer

	conn, err := Connect(InMemory, WithLogWriter(&buf))
	require.NoError(t, err)

	cursor, err := conn.Cursor()
	require.NoError(t, err)
	require.NoError(t, cursor.Execute("CREATE TABLE users (id)"))
	require.NoError(t, conn.Close())

	logged := buf.String()
	assert.Contains(t, logged, `"ns":"connection"`)
	assert.Contains(t, logged, "session opened")
	assert.Contains(t, logged, `"ns":"cursor"`)
	assert.Contains(t, logged, "session closed")
}

func TestSQLiteVersion(t *testing.T) {
	version, err := SQLiteVersion()
	require.NoError(t, err)
	assert.Regexp(t, `^3\.\d+\.\d+$`, version)
}
