package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

func newSuggestCmd() *cobra.Command {
	v := viper.New()
	var (
		rounds []string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Print the best next guess for the given rounds",
		Long: "Replays each --round through a solver session and prints the grid, the best guess and the shortlist.\n" +
			"A round is WORD:PATTERN where the pattern has one mark per letter: g green, y yellow, anything else grey.",
		Example: "  wordle-solver suggest --round CRANE:..y.g --round SLATE:g...g --top 3",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			lists, err := loadWords(cfg)
			if err != nil {
				return err
			}
			parsed := make([]solver.Round, 0, len(rounds))
			for _, raw := range rounds {
				r, err := parseRoundFlag(raw)
				if err != nil {
					return err
				}
				parsed = append(parsed, r)
			}

			s := session.New(uuid.NewString(), lists, cfg.TopK)
			if err := replay(s, parsed); err != nil && !errors.Is(err, session.ErrNoCandidates) {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s.Snapshot())
			}
			_, err = fmt.Fprint(out, themeFor(cmd).Snapshot(s.Snapshot()))
			return err
		},
	}
	cmd.Flags().StringArrayVarP(&rounds, "round", "r", nil, "Round as WORD:PATTERN, repeatable, in play order")
	cmd.Flags().Int("top", 5, "Shortlist size (overrides SOLVER_TOP_K)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the session snapshot as JSON")
	_ = v.BindPFlag("SOLVER_TOP_K", cmd.Flags().Lookup("top"))
	return cmd
}

// parseRoundFlag parses WORD:PATTERN.
func parseRoundFlag(raw string) (solver.Round, error) {
	word, pattern, ok := strings.Cut(raw, ":")
	if !ok {
		return solver.Round{}, fmt.Errorf("round %q: want WORD:PATTERN", raw)
	}
	r, err := solver.ParsePattern(word, pattern)
	if err != nil {
		return solver.Round{}, fmt.Errorf("round %q: %w", raw, err)
	}
	if err := session.Validate(r); err != nil {
		return solver.Round{}, fmt.Errorf("round %q: %w", raw, err)
	}
	return r, nil
}

// replay applies rounds in order. A fully green round ends the replay.
func replay(s *session.Session, rounds []solver.Round) error {
	for _, r := range rounds {
		if err := s.SetActive(r); err != nil {
			return err
		}
		if s.Solved() {
			return nil
		}
		if err := s.Advance(); err != nil {
			return err
		}
	}
	return nil
}
