package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// buildApp mirrors the flag structure of the run command for validation
// testing without invoking the pipeline.
func buildApp(action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name: "retrofit",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Action: action,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "lexicon",
						Aliases:  []string{"l"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Required: true,
					},
					&cli.IntFlag{
						Name:    "iterations",
						Aliases: []string{"n"},
						Value:   10,
					},
				},
			},
		},
	}
}

func TestRunCommand_FlagValidation(t *testing.T) {
	t.Run("input is required", func(t *testing.T) {
		app := buildApp(func(c *cli.Context) error { return nil })
		err := app.Run([]string{"retrofit", "run", "-l", "lex.txt", "-o", "out.txt"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input")
	})

	t.Run("lexicon is required", func(t *testing.T) {
		app := buildApp(func(c *cli.Context) error { return nil })
		err := app.Run([]string{"retrofit", "run", "-i", "vecs.txt", "-o", "out.txt"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lexicon")
	})

	t.Run("iterations defaults to 10", func(t *testing.T) {
		var got int
		app := buildApp(func(c *cli.Context) error {
			got = c.Int("iterations")
			return nil
		})
		err := app.Run([]string{"retrofit", "run", "-i", "v.txt", "-l", "l.txt", "-o", "o.txt"})
		require.NoError(t, err)
		assert.Equal(t, 10, got)
	})

	t.Run("iterations flag parsed", func(t *testing.T) {
		var got int
		app := buildApp(func(c *cli.Context) error {
			got = c.Int("iterations")
			return nil
		})
		err := app.Run([]string{"retrofit", "run", "-i", "v.txt", "-l", "l.txt", "-o", "o.txt", "-n", "25"})
		require.NoError(t, err)
		assert.Equal(t, 25, got)
	})
}

func TestSetupLogger_InvalidLevel(t *testing.T) {
	app := &cli.App{
		Name: "retrofit",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "warn"},
		},
		Before: setupLogger,
		Action: func(c *cli.Context) error { return nil },
	}

	err := app.Run([]string{"retrofit", "--log-level", "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestSetupLogger_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		t.Run(level, func(t *testing.T) {
			app := &cli.App{
				Name: "retrofit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "log-level", Value: "warn"},
				},
				Before: setupLogger,
				Action: func(c *cli.Context) error { return nil },
			}
			assert.NoError(t, app.Run([]string{"retrofit", "--log-level", level}))
		})
	}
}
