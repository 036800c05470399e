package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/weather-assistant/internal/domain/nlu"
)

type extractOutput struct {
	Message   string         `json:"message"`
	SmallTalk *nlu.SmallTalk `json:"small_talk,omitempty"`
	nlu.Extraction
	Intent nlu.Intent `json:"intent"`
}

func newExtractCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "extract <message>",
		Short: "Show the city, activity, time and intent found in a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			out := extractOutput{
				Message:    message,
				Extraction: nlu.NewExtractor().Extract(message),
				Intent:     nlu.NewClassifier().Classify(message),
			}
			if st, ok := nlu.DetectSmallTalk(message); ok {
				out.SmallTalk = &st
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			if out.SmallTalk != nil {
				fmt.Fprintf(w, "%s %s (%s)\n", labelColor.Sprint("small talk:"), out.SmallTalk.Kind, out.SmallTalk.Language)
			}
			fmt.Fprintf(w, "%s %s (confidence %.1f)\n", labelColor.Sprint("city:"), out.City, out.Confidence)
			fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("activity:"), out.Activity)
			fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("time:"), out.TimeContext)
			fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("intent:"), out.Intent)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
