package repl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gsqlite/gsqlite"
	"github.com/gsqlite/gsqlite/internal/shell/config"
	"github.com/gsqlite/gsqlite/internal/util/sysutil"
	"github.com/peterh/liner"
)

type Repl struct {
	conf        config.Config
	conn        *gsqlite.Connection
	ctx         context.Context
	stop        context.CancelFunc
	startedAt   time.Time
	historyPath string
}

func NewRepl(
	ctx context.Context,
	stop context.CancelFunc,
	conf config.Config,
	conn *gsqlite.Connection,
) Repl {
	return Repl{
		conf:        conf,
		conn:        conn,
		ctx:         ctx,
		stop:        stop,
		startedAt:   time.Now(),
		historyPath: filepath.Join(os.TempDir(), ".gsqlite_history"),
	}
}

func (r *Repl) Start() error {
	engineVersion, err := r.engineVersion()
	if err != nil {
		return fmt.Errorf("failed to query the engine version: %w", err)
	}

	fmt.Println()
	fmt.Printf("Connected to %s running SQLite %s\n", r.conf.DatabasePath, engineVersion)
	fmt.Println(`Enter ".help" for usage hints and ".quit" or "CTRL+C" to quit`)
	fmt.Println("Changes are kept in an open transaction; enter \"commit\" to persist them")
	fmt.Println()

	for {
		select {
		case <-r.ctx.Done():
			return nil
		default:
			input := r.prompt()

			if input == "" {
				continue
			}

			if input == "exit" || input == ".exit" || input == ".quit" {
				r.Shutdown()
				return nil
			}

			if input == "clear" || input == ".clear" {
				sysutil.ClearTerminal()
				continue
			}

			if input == "help" || input == ".help" {
				cmdHelp()
				continue
			}

			if strings.EqualFold(input, "commit") {
				cmdCommit(r)
				continue
			}

			if strings.EqualFold(input, "rollback") {
				cmdRollback(r)
				continue
			}

			if input == ".tables" {
				cmdQuery(r, "SELECT name FROM sqlite_master WHERE type = 'table'")
				continue
			}

			if input == ".schema" {
				cmdQuery(r, "SELECT sql FROM sqlite_master WHERE sql IS NOT NULL")
				continue
			}

			if input == ".stats" {
				cmdStats(r)
				continue
			}

			if strings.HasPrefix(input, ".import") {
				cmdImport(r, strings.Fields(input)[1:])
				continue
			}

			if strings.HasPrefix(input, ".") {
				fmt.Println("Unknown command, type .help for usage hints")
				continue
			}

			cmdQuery(r, input)
		}
	}
}

// Shutdown stops the REPL.
func (r *Repl) Shutdown() {
	r.stop()
}

// engineVersion queries the SQLite version through the open session.
func (r *Repl) engineVersion() (string, error) {
	cursor, err := r.conn.Cursor()
	if err != nil {
		return "", err
	}
	defer func() {
		_ = cursor.Close()
	}()

	if err := cursor.Execute("SELECT sqlite_version()"); err != nil {
		return "", err
	}
	row, err := cursor.FetchOne()
	if err != nil {
		return "", err
	}
	if len(row) != 1 {
		return "", fmt.Errorf("no version row returned")
	}
	return row[0].Text(), nil
}

// cleanError removes the category prefixes from an error message so
// the shell output stays readable.
func (r *Repl) cleanError(errStr string) string {
	errStr = strings.ReplaceAll(errStr, "gsqlite: programming error:", "")
	errStr = strings.ReplaceAll(errStr, "gsqlite: database error:", "")
	errStr = strings.ReplaceAll(errStr, "gsqlite: connection error:", "")
	errStr = strings.ReplaceAll(errStr, "failed to prepare statement:", "")
	return strings.TrimSpace(errStr)
}

// prompt shows the prompt and reads the input from the user.
func (r *Repl) prompt() string {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(cmdHelpCompleter)

	if file, err := os.Open(r.historyPath); err == nil {
		_, _ = line.ReadHistory(file)
		file.Close()
	}

	prompt, err := line.Prompt("gsqlite> ")
	if err != nil {
		if err == liner.ErrPromptAborted {
			fmt.Println("CTRL+C pressed, exiting...")
			return ".quit"
		}
		return ""
	}

	line.AppendHistory(prompt)
	if file, err := os.Create(r.historyPath); err == nil {
		_, _ = line.WriteHistory(file)
		file.Close()
	}

	return strings.TrimSpace(prompt)
}
