// Command pijulgraph is a thin wrapper over package repo/output/graph: a
// runnable entry point for exercising the graph core from a shell,
// nothing more. It carries no algorithm of its own.
//
// Usage:
//
//	pijulgraph init     <db> <branch>
//	pijulgraph apply    <db> <branch> <patchfile>
//	pijulgraph output   <db> <branch> <patch>:<line>
//	pijulgraph unrecord <db> <branch> <patchfile> <patchid>
package main

import (
	"context"
	"crypto/sha512"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pijul-go/graphcore/graph"
	"github.com/pijul-go/graphcore/ids"
	"github.com/pijul-go/graphcore/output"
	"github.com/pijul-go/graphcore/patch"
	"github.com/pijul-go/graphcore/repo"
	"github.com/pijul-go/graphcore/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	var err error
	switch os.Args[1] {
	case "init":
		err = runInit(os.Args[2:])
	case "apply":
		err = runApply(os.Args[2:])
	case "output":
		err = runOutput(os.Args[2:])
	case "unrecord":
		err = runUnrecord(os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		logrus.WithError(err).Fatal("pijulgraph")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pijulgraph init|apply|output|unrecord ...")
	os.Exit(2)
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: pijulgraph init <db> <branch>")
	}
	s, err := store.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Update(context.Background(), func(w *store.WriteTx) error {
		return w.CreateBranch(fs.Arg(1))
	})
}

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 3 {
		return fmt.Errorf("usage: pijulgraph apply <db> <branch> <patchfile>")
	}
	raw, err := os.ReadFile(fs.Arg(2))
	if err != nil {
		return err
	}
	p, err := patch.Decode(raw)
	if err != nil {
		return err
	}

	s, err := store.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer s.Close()

	digest := sha512.Sum512(raw)
	hash := ids.Hash{Algo: ids.HashSHA512, Digest: digest[:]}
	pid, err := repo.ApplyPatch(context.Background(), s, fs.Arg(1), hash, p)
	if err != nil {
		return err
	}
	fmt.Println(uint64(pid))
	return nil
}

func runOutput(args []string) error {
	fs := flag.NewFlagSet("output", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 3 {
		return fmt.Errorf("usage: pijulgraph output <db> <branch> <patch>:<line>")
	}
	key, err := parseKey(fs.Arg(2))
	if err != nil {
		return err
	}

	s, err := store.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer s.Close()

	return s.View(func(r *store.ReadTx) error {
		g, err := graph.Retrieve(r, fs.Arg(1), key)
		if err != nil {
			return err
		}
		w := output.NewWriter(os.Stdout)
		hasConflicts, _, err := output.File(r, fs.Arg(1), w, g)
		if err != nil {
			return err
		}
		if hasConflicts {
			logrus.Warn("output contains unresolved conflicts")
		}
		return nil
	})
}

func runUnrecord(args []string) error {
	fs := flag.NewFlagSet("unrecord", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 4 {
		return fmt.Errorf("usage: pijulgraph unrecord <db> <branch> <patchfile> <patchid>")
	}
	raw, err := os.ReadFile(fs.Arg(2))
	if err != nil {
		return err
	}
	p, err := patch.Decode(raw)
	if err != nil {
		return err
	}
	pidNum, err := strconv.ParseUint(fs.Arg(3), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid patch id %q: %w", fs.Arg(3), err)
	}

	s, err := store.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer s.Close()

	return repo.Unrecord(context.Background(), s, fs.Arg(1), ids.PatchId(pidNum), p)
}

// parseKey parses "patch:line" into an ids.Key.
func parseKey(s string) (ids.Key, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return ids.Key{}, fmt.Errorf("invalid key %q, want patch:line", s)
	}
	pn, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return ids.Key{}, fmt.Errorf("invalid patch in %q: %w", s, err)
	}
	ln, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return ids.Key{}, fmt.Errorf("invalid line in %q: %w", s, err)
	}
	return ids.Key{Patch: ids.PatchId(pn), Line: ids.LineId(ln)}, nil
}

