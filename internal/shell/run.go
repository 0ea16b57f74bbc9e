// Package shell implements the interactive gsqlite SQL shell.
package shell

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gsqlite/gsqlite"
	"github.com/gsqlite/gsqlite/internal/shell/config"
	"github.com/gsqlite/gsqlite/internal/shell/repl"
	"github.com/gsqlite/gsqlite/internal/version"
)

// Run runs the gsqlite shell.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(version.CLIVersion())

	opts := []gsqlite.Option{gsqlite.WithPragmas(conf.Pragmas...)}
	if conf.Verbose {
		opts = append(opts, gsqlite.WithLogWriter(os.Stderr))
	}

	conn, err := gsqlite.Connect(conf.DatabasePath, opts...)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close()
	}()

	rp := repl.NewRepl(ctx, stop, conf, conn)
	defer rp.Shutdown()
	go func() {
		if err := rp.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	fmt.Printf("\nGoodbye!\n\n")
	return nil
}
