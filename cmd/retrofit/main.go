// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/retrofit"
	"github.com/poiesic/retrofit/embedding"
	"github.com/poiesic/retrofit/search"
	"github.com/poiesic/retrofit/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "retrofit",
		Usage: "Retrofit word vectors to a semantic lexicon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Set logging level (debug, info, warn, error)",
				Value: "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Retrofit a word-vector file against a lexicon file",
				Action: runCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Input word vectors (text, .gz supported)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "lexicon",
						Aliases:  []string{"l"},
						Usage:    "Relation lexicon file (text, .gz supported)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "Output word vectors",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "iterations",
						Aliases: []string{"n"},
						Usage:   "Number of retrofitting iterations",
						Value:   10,
					},
					&cli.BoolFlag{
						Name:  "l2-normalize",
						Usage: "L2-normalize input vectors before retrofitting",
					},
					&cli.BoolFlag{
						Name:  "jacobi",
						Usage: "Use the synchronous parallel variant (numerically different from the reference sweep)",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for the jacobi variant (0 = derive from CPU count)",
					},
				},
			},
			{
				Name:   "import",
				Usage:  "Import a word-vector file into the table store",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Name to store the table under",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Input word vectors (text, .gz supported)",
						Required: true,
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Export a stored table back to a word-vector file",
				Action: exportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Name of the stored table",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "Output word vectors",
						Required: true,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List stored tables",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "similar",
				Usage:  "List the nearest neighbors of a word in a stored table",
				Action: similarCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Name of the stored table",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "word",
						Aliases:  []string{"w"},
						Usage:    "Probe word",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of neighbors to list",
						Value: 10,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand(c *cli.Context) error {
	config := &retrofit.Config{
		Iterations:  c.Int("iterations"),
		L2Normalize: c.Bool("l2-normalize"),
		Jacobi:      c.Bool("jacobi"),
		PoolSize:    c.Int("pool-size"),
	}

	pipeline := retrofit.NewPipeline(config, os.Stderr)
	return pipeline.Run(c.String("input"), c.String("lexicon"), c.String("output"))
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	table, err := embedding.LoadFile(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to load vectors: %w", err)
	}

	repo, err := badger.NewTableRepository(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	name := c.String("name")
	if err := repo.PutTable(ctx, name, table); err != nil {
		return fmt.Errorf("failed to store table: %w", err)
	}

	fmt.Printf("Stored %d words (dim %d) as %q\n", table.Len(), table.Dim(), name)
	return nil
}

func exportCommand(c *cli.Context) error {
	ctx := context.Background()

	repo, err := badger.NewTableRepository(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	table, err := repo.GetTable(ctx, c.String("name"))
	if err != nil {
		return fmt.Errorf("failed to load table: %w", err)
	}

	output := c.String("output")
	if err := embedding.WriteFile(output, table); err != nil {
		return fmt.Errorf("failed to write vectors: %w", err)
	}

	fmt.Printf("Wrote %d words to %s\n", table.Len(), output)
	return nil
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()

	repo, err := badger.NewTableRepository(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	names, err := repo.ListTables(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func similarCommand(c *cli.Context) error {
	ctx := context.Background()

	repo, err := badger.NewTableRepository(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	table, err := repo.GetTable(ctx, c.String("name"))
	if err != nil {
		return fmt.Errorf("failed to load table: %w", err)
	}

	matches, err := search.Nearest(table, c.String("word"), c.Int("limit"))
	if err != nil {
		return err
	}

	for _, m := range matches {
		fmt.Printf("%s\t%.4f\n", m.Word, m.Score)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
