// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

// buildFlags returns fresh flag values so that each app gets its own.
func buildFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntSliceFlag{
			Name:    "keys",
			Usage:   "keys to insert, in insertion order",
			Value:   cli.NewIntSlice(8, 3, 10, 1, 6, 14, 4, 7, 13),
			EnvVars: []string{"BST_KEYS"},
		},
		&cli.IntFlag{
			Name:    "random",
			Usage:   "insert this many random keys in [0, 1000) instead of --keys",
			EnvVars: []string{"BST_RANDOM"},
		},
		&cli.IntSliceFlag{
			Name:    "delete",
			Usage:   "keys to delete once the tree is built",
			EnvVars: []string{"BST_DELETE"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity (debug, info, warn, error)",
			Value:   "info",
			EnvVars: []string{"BST_LOG_LEVEL"},
		},
	}
}

func run(args []string) error {
	return newApp(os.Stdout).Run(args)
}

func newApp(out io.Writer) *cli.App {
	app := &cli.App{
		Name:    "bstdemo",
		Usage:   "build a binary search tree and report on it",
		Version: versioninfo.Short(),
		Writer:  out,
	}
	app.Commands = []*cli.Command{
		newRunCommand(),
		newPrintCommand(),
		&cli.Command{
			Name:  "version",
			Usage: "print version",
			Action: func(cctx *cli.Context) error {
				fmt.Fprintln(cctx.App.Writer, versioninfo.Short())
				return nil
			},
		},
	}
	return app
}
