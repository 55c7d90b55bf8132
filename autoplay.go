package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func newAutoplayCmd() *cobra.Command {
	v := viper.New()
	var (
		answer string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "autoplay",
		Short: "Let the solver play against an answer",
		Long:  "Plays the solver's suggestions against --answer (a random solution when omitted) for up to six guesses.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			lists, err := loadWords(cfg)
			if err != nil {
				return err
			}
			if answer == "" {
				answer = lists.RandomSolution()
			}
			answer = words.Normalize(answer)
			if !lists.IsValid(answer) {
				if near, _ := lists.Closest(answer); near != "" {
					return fmt.Errorf("%q is not in the word list (did you mean %s?)", answer, near)
				}
				return fmt.Errorf("%q is not in the word list", answer)
			}

			tr, err := game.Autoplay(game.New(answer, lists.IsValid), session.New(uuid.NewString(), lists, cfg.TopK))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(tr)
			}
			theme := themeFor(cmd)
			for i, st := range tr.Steps {
				fmt.Fprintf(out, "%d  %s  %d left\n", i+1, theme.Round(st.Round), st.Remaining)
			}
			switch {
			case tr.Won:
				fmt.Fprintf(out, "\nsolved %s in %d\n", tr.Answer, len(tr.Steps))
			default:
				fmt.Fprintf(out, "\nmissed %s after %d\n", tr.Answer, len(tr.Steps))
			}
			if tr.UsedFallback {
				fmt.Fprintln(out, "(extended word list used)")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "Answer to play against (random solution when empty)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the trace as JSON")
	return cmd
}
