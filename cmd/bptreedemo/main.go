// Command bptreedemo exercises the bptree package end to end: build a
// tree, walk it with the demo and bench sub-commands, and print its
// structure. Run with:
//
//	go run ./cmd/bptreedemo demo --order 4
//	go run ./cmd/bptreedemo bench --order 8 --count 10000
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/mverrel/bptree"
	"github.com/urfave/cli/v2"
)

var orderFlag = &cli.IntFlag{
	Name:  "order",
	Usage: "maximum entries per node",
	Value: bptree.DefaultOrder,
}

func main() {
	app := &cli.App{
		Name:  "bptreedemo",
		Usage: "bptree demonstration CLI",
		Commands: []*cli.Command{
			demoCommand,
			benchCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var demoCommand = &cli.Command{
	Name:  "demo",
	Usage: "insert, search, range, delete and dump a small tree",
	Flags: []cli.Flag{orderFlag},
	Action: func(c *cli.Context) error {
		tree, err := bptree.New[int, string](bptree.WithOrder(c.Int(orderFlag.Name)))
		if err != nil {
			return err
		}

		fmt.Println("--- insert ---")
		for _, k := range []int{10, 20, 5, 15, 25, 1, 30, 12, 18} {
			if err := tree.Insert(k, fmt.Sprintf("value-%d", k)); err != nil {
				return err
			}
		}
		fmt.Printf("size: %d\n", tree.Size())

		fmt.Println("--- duplicate insert ---")
		if err := tree.Insert(10, "value-10-again"); err != nil {
			fmt.Printf("Insert(10, ...) = %v\n", err)
		}

		fmt.Println("--- upsert ---")
		tree.Upsert(10, "updated-10")
		if v, err := tree.Search(10); err == nil {
			fmt.Printf("10 -> %s\n", v)
		}

		fmt.Println("--- range [10, 25) ---")
		lo, hi := 10, 25
		cur := tree.Range(&lo, &hi)
		for cur.Next() {
			fmt.Printf("  %d -> %s\n", cur.Key(), cur.Value())
		}

		fmt.Println("--- delete ---")
		if err := tree.Delete(5); err != nil {
			return err
		}
		fmt.Printf("size after deleting 5: %d\n", tree.Size())

		if err := tree.CheckInvariants(); err != nil {
			return fmt.Errorf("invariant check failed: %w", err)
		}
		fmt.Println("--- dump ---")
		fmt.Print(tree.Dump())
		return nil
	},
}

var benchCommand = &cli.Command{
	Name:  "bench",
	Usage: "insert random keys and report timing and invariant health",
	Flags: []cli.Flag{
		orderFlag,
		&cli.IntFlag{Name: "count", Usage: "number of keys to insert", Value: 10000},
		&cli.Int64Flag{Name: "seed", Usage: "random seed", Value: 1},
	},
	Action: func(c *cli.Context) error {
		tree, err := bptree.New[int, int](bptree.WithOrder(c.Int(orderFlag.Name)))
		if err != nil {
			return err
		}

		count := c.Int("count")
		rng := rand.New(rand.NewSource(c.Int64("seed")))
		keys := rng.Perm(count)

		start := time.Now()
		for _, k := range keys {
			tree.Upsert(k, k*k)
		}
		elapsed := time.Since(start)

		fmt.Printf("inserted %d keys in %s (%.0f ops/sec)\n", count, elapsed, float64(count)/elapsed.Seconds())
		fmt.Printf("size: %d\n", tree.Size())

		if err := tree.CheckInvariants(); err != nil {
			return fmt.Errorf("invariant check failed: %w", err)
		}
		fmt.Println("invariants: ok")
		return nil
	},
}
