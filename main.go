// main.go
//
// Entry point for the wordle-solver binary.
// Subcommands:
//   - serve    → HTTP API (sessions, stateless filter/rank, daily, auth)
//   - suggest  → replay rounds from flags and print the next best guess
//   - autoplay → let the solver play against a known answer
//
// A .env file is loaded first if present; config keys then come from the
// environment (see internal/config).

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/logging"
	"github.com/robalobadob/wordle-solver/internal/render"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordle-solver",
		Short:         "Wordle solver: constraint filter, frequency ranker, HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("dark", false, "Render tiles with the dark palette")
	root.AddCommand(newServeCmd(), newSuggestCmd(), newAutoplayCmd())
	return root
}

// loadConfig reads configuration, letting bound flags override env keys.
func loadConfig(v *viper.Viper) (config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, err
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)
	return cfg, nil
}

// loadWords loads the configured word lists.
func loadWords(cfg config.Config) (*words.Lists, error) {
	lists, err := words.Load(cfg.Words)
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	return lists, nil
}

func themeFor(cmd *cobra.Command) render.Theme {
	dark, _ := cmd.Flags().GetBool("dark")
	return render.Theme{Dark: dark}
}
