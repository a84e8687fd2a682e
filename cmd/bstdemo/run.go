// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-uuid"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"

	bst "github.com/absolutelightning/go-immutable-bst"
)

func newRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "build the tree, then print lookup, size, depth, height, balance and traversals",
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "lookup",
				Usage:   "key to look up",
				Value:   12,
				EnvVars: []string{"BST_LOOKUP"},
			},
		}, buildFlags()...),
		Action: runReport,
	}
}

func newPrintCommand() *cli.Command {
	return &cli.Command{
		Name:   "print",
		Usage:  "build the tree and print its shape",
		Flags:  buildFlags(),
		Action: runPrint,
	}
}

func runReport(cctx *cli.Context) error {
	log := configLogger(cctx)
	tree, err := buildTree(cctx, log)
	if err != nil {
		return err
	}

	out := cctx.App.Writer
	key := cctx.Int("lookup")
	fmt.Fprintf(out, "lookup %d: %t\n", key, tree.Lookup(key))
	fmt.Fprintf(out, "size: %d\n", tree.Root().Size())
	fmt.Fprintf(out, "depth: %d\n", tree.Depth())
	fmt.Fprintf(out, "height: %d\n", tree.Height())
	fmt.Fprintf(out, "balanced: %t\n", tree.Balanced())
	if lo, err := tree.Minimum(); err == nil {
		fmt.Fprintf(out, "minimum: %d\n", lo)
	}

	fmt.Fprintln(out)
	for _, order := range []bst.Order{bst.PreOrder, bst.InOrder, bst.PostOrder} {
		keys, err := tree.Traverse(order)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", order, joinKeys(keys))
		if order == bst.InOrder && !slices.IsSorted(keys) {
			log.Warn("in-order traversal is not sorted", "keys", keys)
		}
	}
	return nil
}

func runPrint(cctx *cli.Context) error {
	log := configLogger(cctx)
	tree, err := buildTree(cctx, log)
	if err != nil {
		return err
	}
	return tree.PrintTree(cctx.App.Writer)
}

func configLogger(cctx *cli.Context) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	return log
}

// buildTree inserts the configured keys in a single transaction and then
// applies the configured deletes.
func buildTree(cctx *cli.Context, log *slog.Logger) (*bst.Tree, error) {
	keys := cctx.IntSlice("keys")
	if n := cctx.Int("random"); n > 0 {
		var err error
		keys, err = randomKeys(n)
		if err != nil {
			return nil, fmt.Errorf("generating random keys: %w", err)
		}
	}

	txn := bst.New().Txn()
	for _, k := range keys {
		txn.Insert(k)
	}
	for _, k := range cctx.IntSlice("delete") {
		if !txn.Delete(k) {
			log.Warn("delete of missing key ignored", "key", k)
			continue
		}
		log.Debug("deleted key", "key", k)
	}
	tree := txn.Commit()

	if err := tree.Root().Validate(); err != nil {
		return nil, err
	}
	log.Debug("tree built", "inserted", len(keys), "size", tree.Len())
	return tree, nil
}

func randomKeys(n int) ([]int, error) {
	buf, err := uuid.GenerateRandomBytes(2 * n)
	if err != nil {
		return nil, err
	}
	keys := make([]int, n)
	for i := range keys {
		keys[i] = int(binary.BigEndian.Uint16(buf[2*i:])) % 1000
	}
	return keys, nil
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}
