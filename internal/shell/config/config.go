package config

import (
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/gsqlite/gsqlite/internal/version"
)

// Config represents the configuration for the gsqlite shell.
type Config struct {
	DatabasePath string   `arg:"positional" help:"Path to the SQLite database file (defaults to a private in-memory database)" default:":memory:"`
	Pragmas      []string `arg:"--pragma,separate" help:"PRAGMA statement to run right after connecting (repeatable)"`
	Verbose      bool     `arg:"-v,--verbose" help:"Log session activity as JSON to stderr"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.CLIVersion())
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	return cfg
}
