package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oisee/chorddepth/pkg/config"
	"github.com/oisee/chorddepth/pkg/progression"
	"github.com/oisee/chorddepth/pkg/theory"
	"github.com/oisee/chorddepth/pkg/tui"
)

func analyzeCmd(opts *options) *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "analyze [chords...]",
		Short: "Print the analysis of a progression and exit",
		Example: `  chorddepth analyze Fm9 C/Bb G13 Dbdim7
  chorddepth analyze --tuning standard --center G -f song.txt
  chorddepth analyze --format yaml Am7 D7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer env.Close()

			chords := env.Config.Progression
			switch {
			case len(args) > 0:
				chords = args
			case file != "":
				if chords, err = progression.LoadFile(file); err != nil {
					return err
				}
			}

			tuning, err := env.Config.TuningPitches(env.Config.Tuning)
			if err != nil {
				return err
			}
			center, err := env.Config.CenterPitch()
			if err != nil {
				return err
			}

			analyses := make([]theory.Analysis, len(chords))
			for i, symbol := range chords {
				analyses[i] = theory.AnalyzeSymbol(symbol, tuning, center)
				if analyses[i].Err != nil {
					env.Logger.Warn("Chord not analyzed", "symbol", symbol, "error", analyses[i].Err)
				}
			}

			return writeAnalyses(cmd.OutOrStdout(), format, env.Config.Tuning, tuning, center, analyses)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the progression from a file")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, yaml)")
	return cmd
}

func writeAnalyses(w io.Writer, format, tuningName string, tuning []theory.PitchClass, center theory.PitchClass, analyses []theory.Analysis) error {
	switch format {
	case "table":
		_, err := fmt.Fprintln(w, tui.RenderTable(analyses, tuning, tui.DefaultStyles()))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(tuningName, tuning, center, analyses)); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want table or yaml)", format)
	}
}

func qualitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qualities",
		Short: "List the chord quality vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, qc := range theory.Qualities() {
				tokens := make([]string, len(qc.Tokens))
				for i, tok := range qc.Tokens {
					if tok == "" {
						tok = `""`
					}
					tokens[i] = tok
				}
				intervals := make([]string, len(qc.Intervals))
				for i, iv := range qc.Intervals {
					intervals[i] = fmt.Sprint(iv)
				}
				rows = append(rows, []string{qc.Name, strings.Join(tokens, " "), strings.Join(intervals, " ")})
			}
			rows = append(rows, []string{"fallback (any other token)", "", "0 7"})

			_, err := fmt.Fprintln(cmd.OutOrStdout(), plainTable([]string{"Quality", "Tokens", "Semitones"}, rows))
			return err
		},
	}
}

func tuningsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tunings",
		Short: "List the configured tunings",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer env.Close()

			rows := make([][]string, 0, len(env.Config.Tunings))
			for _, name := range env.Config.TuningNames() {
				mark := ""
				if name == env.Config.Tuning {
					mark = "*"
				}
				rows = append(rows, []string{mark, name, strings.Join(env.Config.Tunings[name], " ")})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), plainTable([]string{"", "Name", "Strings (low to high)"}, rows))
			return err
		},
	}
}

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default user config if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := newLogger(opts.logFile, opts.logLevel)
			if err != nil {
				return err
			}
			defer closeQuietly(closer)

			path, err := config.NewLoader(logger).EnsureUserConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return cmd
}

func plainTable(headers []string, rows [][]string) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Headers(headers...).
		Rows(rows...).
		Render()
}
