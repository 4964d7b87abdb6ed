package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/seqtrie/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("seqtrie"),
		kong.Description("Load keyed records into a sequence trie and query them."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(cli.NewContext(cli.CLI.Verbose, os.Stdout, os.Stderr)); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
