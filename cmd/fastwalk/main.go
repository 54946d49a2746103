// Command fastwalk walks one or more directory trees, resolves each
// regular file's on-disk extents, and either prints paths in disk
// order or issues kernel readahead over them in disk order.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/andikleen/fastwalk-go/internal/diag"
	"github.com/andikleen/fastwalk-go/internal/fdpool"
	"github.com/andikleen/fastwalk-go/internal/pipeline"
	"github.com/andikleen/fastwalk-go/internal/runctx"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run does the real work and returns the process exit status, kept
// separate from main so a top-level recover can still report a clean
// message on the way out.
func run(args []string) (status int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "fastwalk: out of memory")
			status = 2
		}
	}()

	fs := pflag.NewFlagSet("fastwalk", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	skip := fs.StringArrayP("p", "p", nil, "skip this simple name during traversal (may repeat)")
	readahead := fs.BoolP("r", "r", false, "readahead mode: issue kernel readahead instead of printing paths")
	debug := fs.BoolP("d", "d", false, "enable debug diagnostics on stderr")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, "usage: fastwalk [-p SKIP]... [-r] [-d] [ROOT...]")
		fs.PrintDefaults()
		return 1
	}

	roots := fs.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}

	d := diag.NewStderr(*debug)

	maxFD, err := fdpool.ComputeMaxFD()
	if err != nil {
		d.Errorf("fastwalk", "getrlimit: %v", err)
		return 2
	}

	ctx, err := runctx.New(*skip, d, maxFD, *readahead)
	if err != nil {
		d.Errorf("fastwalk", "%v", err)
		return 2
	}

	if err := pipeline.Run(ctx, roots); err != nil {
		d.Errorf("fastwalk", "%v", err)
		return 1
	}

	if d.Errored() {
		return 1
	}
	return 0
}
