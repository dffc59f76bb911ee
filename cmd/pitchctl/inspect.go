package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/albapepper/pitchzone/internal/config"
	"github.com/albapepper/pitchzone/internal/loader"
	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/provider/file"
	"github.com/albapepper/pitchzone/internal/zone"
)

// --------------------------------------------------------------------------
// classify command
// --------------------------------------------------------------------------

func classifyCmd() *cobra.Command {
	var (
		dir      string
		playerID string
		season   int
		filter   = pitch.NewFilterSpec()
		list     bool
	)
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify and filter one player's season log from a data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := filterFromFlags(cmd, filter)
			if err != nil {
				return err
			}
			orch := loader.New(file.New(dir), season, 0, logger)
			ds, err := orch.Load(context.Background(), playerID)
			if err != nil {
				return err
			}
			return writeClassification(cmd.OutOrStdout(), ds, spec, list)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "./data", "Data directory")
	cmd.Flags().StringVar(&playerID, "player", "", "Player ID")
	cmd.Flags().IntVar(&season, "season", config.DefaultSeason, "Season year")
	cmd.Flags().StringVar(&filter.OutcomeType, "outcome", pitch.All, "Outcome category")
	cmd.Flags().StringVar(&filter.Detail, "detail", pitch.All, "Called, Swing or Foul")
	cmd.Flags().StringVar(&filter.PitchType, "pitch-type", pitch.All, "Pitch type code")
	cmd.Flags().StringVar(&filter.Inning, "inning", pitch.All, "Inning number")
	cmd.Flags().BoolVar(&list, "list", false, "Print every matching pitch")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}

// filterFromFlags validates the raw flag values through FilterSpec.With.
func filterFromFlags(cmd *cobra.Command, raw pitch.FilterSpec) (pitch.FilterSpec, error) {
	spec := pitch.NewFilterSpec()
	fields := []struct {
		field pitch.Field
		value string
	}{
		{pitch.FieldOutcome, raw.OutcomeType},
		{pitch.FieldDetail, raw.Detail},
		{pitch.FieldPitchType, raw.PitchType},
		{pitch.FieldInning, raw.Inning},
	}
	for _, f := range fields {
		next, err := spec.With(f.field, f.value)
		if err != nil {
			return spec, err
		}
		spec = next
	}
	return spec, nil
}

func writeClassification(out io.Writer, ds *loader.Dataset, spec pitch.FilterSpec, list bool) error {
	counts := make(map[pitch.Category]int, len(pitch.Categories))
	for _, r := range ds.Pitches {
		counts[r.Category]++
	}
	visible := pitch.Apply(ds.Pitches, spec)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "player\t%s\n", ds.PlayerID)
	fmt.Fprintf(tw, "season\t%d\n", ds.Season)
	fmt.Fprintf(tw, "pitches\t%d\n", len(ds.Pitches))
	fmt.Fprintf(tw, "dropped\t%d\n", ds.Dropped)
	for _, c := range pitch.Categories {
		fmt.Fprintf(tw, "%s\t%d\n", c, counts[c])
	}
	fmt.Fprintf(tw, "matching\t%d\n", len(visible))
	if err := tw.Flush(); err != nil {
		return err
	}
	if !list {
		return nil
	}

	tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tdate\tinning\ttype\tcategory\tplate_x\tplate_z\tdescription\tevent")
	for i, r := range visible {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.2f\t%.2f\t%s\t%s\n",
			i, r.GameDate, r.InningText(), r.PitchType, r.Category, r.PlateX, r.PlateZ, r.Description, r.Events)
	}
	return tw.Flush()
}

// --------------------------------------------------------------------------
// zone command
// --------------------------------------------------------------------------

func zoneCmd() *cobra.Command {
	var size float64
	cmd := &cobra.Command{
		Use:   "zone [plate_x plate_z]",
		Short: "Print strike-zone geometry for a box size, optionally projecting one point",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("--size must be positive")
			}
			if len(args) == 1 {
				return fmt.Errorf("need both plate_x and plate_z")
			}
			var point []float64
			for _, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("parse %q: %w", a, err)
				}
				point = append(point, v)
			}
			return writeZone(cmd.OutOrStdout(), zone.ForBox(size), point)
		},
	}
	cmd.Flags().Float64Var(&size, "size", 300, "Box edge length in pixels")
	return cmd
}

func writeZone(out io.Writer, g zone.Geometry, point []float64) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "box\t%g\n", g.BoxSize)
	fmt.Fprintf(tw, "scale\t%g x %g px/ft\n", g.ScaleX, g.ScaleZ)
	fmt.Fprintf(tw, "zone\tleft=%.2f top=%.2f width=%.2f height=%.2f\n", g.Zone.Left, g.Zone.Top, g.Zone.Width, g.Zone.Height)
	for i, l := range g.Gridlines() {
		fmt.Fprintf(tw, "gridline %d\t(%.2f, %.2f) -> (%.2f, %.2f)\n", i, l.From.X, l.From.Y, l.To.X, l.To.Y)
	}
	if len(point) == 2 {
		p := g.Project(point[0], point[1])
		fmt.Fprintf(tw, "point\t(%.2f, %.2f) in_window=%t\n", p.X, p.Y, zone.InWindow(point[0], point[1]))
	}
	return tw.Flush()
}
