package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/weather-assistant/internal/domain/suitability"
	"github.com/yanqian/weather-assistant/internal/domain/weather"
)

func newScoreCmd() *cobra.Command {
	var snapshot weather.Snapshot
	cmd := &cobra.Command{
		Use:   "score <activity>",
		Short: "Rate an activity against the given conditions",
		Long:  "Rate an activity against the given conditions.\n\nKnown activities: " + strings.Join(suitability.ActivityNames(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := suitability.Lookup(args[0]); !ok {
				return fmt.Errorf("unknown activity %q, try one of: %s", args[0], strings.Join(suitability.ActivityNames(), ", "))
			}
			verdict := suitability.NewScorer().Score(snapshot, args[0])

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s (score %d)\n", verdict.Activity, tierColor(verdict.Recommendation).Sprint(strings.ToUpper(string(verdict.Recommendation))), verdict.Score)
			for _, f := range verdict.Factors {
				fmt.Fprintf(w, "  %-14s %-10s %s\n", f.Name, f.Value, impactColor(f.Impact).Sprint(f.Impact))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&snapshot.Temperature, "temp", 20, "temperature in °C")
	cmd.Flags().Float64Var(&snapshot.WindSpeed, "wind", 3, "wind speed in m/s")
	cmd.Flags().Float64Var(&snapshot.Precipitation, "precip", 0, "precipitation in mm")
	cmd.Flags().IntVar(&snapshot.Humidity, "humidity", 50, "relative humidity in %")
	return cmd
}
