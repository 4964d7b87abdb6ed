package cli

import (
	"io"
	"log/slog"
)

// Context is handed to every command's Run method.
type Context struct {
	Logger *slog.Logger
	Stdout io.Writer
}

// NewContext builds the command context. Logs go to stderr as text, at debug level when verbose is set.
func NewContext(verbose bool, stdout io.Writer, stderr io.Writer) *Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return &Context{
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		Stdout: stdout,
	}
}

// App is the command line of seqtrie.
type App struct {
	Verbose bool `name:"verbose" short:"v" help:"Log debug details to stderr"`

	List   ListCmd   `cmd:"" help:"List records in trie order"`
	Lookup LookupCmd `cmd:"" help:"Find the record whose key is the longest prefix of a key"`
	Tree   TreeCmd   `cmd:"" help:"Print the trie built from the records"`
}

var CLI App
