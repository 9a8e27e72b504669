package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-negativo/algorithms/axis"
	"github.com/RyanBlaney/sonido-negativo/algorithms/reflection"
)

func (a *app) reflectCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "reflect [notes...]",
		Short: "Reflect notes across the axis of a key center",
		Long: `Reflects each note across the axis of the key center. Notes are given as
arguments, or read line by line from stdin when no arguments are passed.
Valid spellings: C Db D Eb E F Gb G Ab A Bb B.`,
		Example: "  negativo reflect C E G --key C\n  echo 'F A C' | negativo reflect -k D",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession(key)
			if err != nil {
				return err
			}
			sep := a.cfg.Separator

			if len(args) > 0 {
				if err := s.PressLine(reflection.JoinNotes(args, sep), sep); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), reflection.JoinNotes(s.Output(), sep))
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				s.Clear()
				if err := s.PressLine(scanner.Text(), sep); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), reflection.JoinNotes(s.Output(), sep))
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "key center (default from config)")
	return cmd
}

func (a *app) axisCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "axis",
		Short: "Show the axis of a key center and its overlay rotation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newSession(key)
			if err != nil {
				return err
			}

			overlay := axis.NewOverlay(a.cfg.OverlayRadius)
			p, q := overlay.EndpointsFor(s.Index())

			rows := [][2]string{
				{"key center", s.KeyCenter()},
				{"axis", s.Axis().String()},
				{"index", strconv.Itoa(s.Index())},
				{"angle", fmt.Sprintf("%g°", s.Angle())},
				{"endpoints", fmt.Sprintf("(%.3f, %.3f) (%.3f, %.3f)", p.X, p.Y, q.X, q.Y)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.styles.keyValues(rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "key center (default from config)")
	return cmd
}

func (a *app) tableCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the chromatic table and each note's reflection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newSession(key)
			if err != nil {
				return err
			}

			header := []string{"note", "inversion", "key shift", "reflection (" + s.Axis().String() + ")"}
			var rows [][]string
			for _, entry := range a.engine.Table().Entries() {
				rows = append(rows, []string{
					entry.Symbol,
					strconv.Itoa(entry.InversionDistance),
					strconv.Itoa(entry.KeyShift),
					a.engine.Reflect(entry.Symbol, s.KeyCenter()),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.styles.table(header, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "key center (default from config)")
	return cmd
}

func (a *app) spinCmd() *cobra.Command {
	var (
		key   string
		steps int
	)

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Walk the key center selector and print each stop",
		Long: `Steps the key center selector one half-step at a time, up the chromatic
scale for positive --steps and down for negative, printing the axis and the
overlay rotation at every stop.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newSession(key)
			if err != nil {
				return err
			}

			header := []string{"key", "axis", "index", "angle"}
			rows := [][]string{spinRow(s.KeyCenter(), s.Axis(), s.Index(), s.Angle())}

			delta := 1
			if steps < 0 {
				delta, steps = -1, -steps
			}
			for i := 0; i < steps; i++ {
				s.Step(delta)
				rows = append(rows, spinRow(s.KeyCenter(), s.Axis(), s.Index(), s.Angle()))
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.styles.table(header, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "starting key center (default from config)")
	cmd.Flags().IntVarP(&steps, "steps", "n", 12, "half-steps to walk, negative walks down")
	return cmd
}

func spinRow(key string, pair reflection.AxisPair, index int, angle float64) []string {
	return []string{key, pair.String(), strconv.Itoa(index), fmt.Sprintf("%g°", angle)}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Explain negative harmony and the axis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.styles.box("Negative Harmony Inverter", reflection.About))
			return nil
		},
	}
}
