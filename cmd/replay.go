package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"event-state/core/feed"
	"event-state/core/logger"
	"event-state/core/mapping"
	"event-state/core/reconcile"
	"event-state/feature/fetcher"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	replayMappings string
	replayFeeds    []string
	replayLogLevel string
)

// replayCmd merges recorded snapshots offline.
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay recorded feed snapshots and print the resulting state",
	Long: `Applies feed snapshots in order to an empty engine and prints the client view as JSON.

Files may hold the raw delimited text or the upstream JSON payload
({"mappings": "..."} or {"odds": "..."}). A merge summary per snapshot is logged to stderr.

Examples:
  replay --mappings mappings.txt --feed t0.txt --feed t1.txt
  replay --mappings mappings.json --feed state.json --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logg, err := logger.New(&logger.Config{Level: replayLogLevel, Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		return runReplay(cmd.OutOrStdout(), replayMappings, replayFeeds, logg)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayMappings, "mappings", "", "Mapping table file")
	replayCmd.Flags().StringArrayVar(&replayFeeds, "feed", nil, "Feed snapshot file (repeatable, applied in order)")
	replayCmd.Flags().StringVar(&replayLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	_ = replayCmd.MarkFlagRequired("mappings")
	_ = replayCmd.MarkFlagRequired("feed")

	RootCmd.AddCommand(replayCmd)
}

func runReplay(out io.Writer, mappingsPath string, feedPaths []string, logg *zap.Logger) error {
	rawMappings, err := readPayload(mappingsPath, fetcher.DecodeMappings)
	if err != nil {
		return err
	}

	engine := reconcile.NewEngine(logg)
	engine.UpdateMappings(mapping.Parse(rawMappings, logg))

	for _, path := range feedPaths {
		rawState, err := readPayload(path, fetcher.DecodeState)
		if err != nil {
			return err
		}

		result := engine.MergeBatch(feed.Parse(rawState, logg))
		logg.Info("Snapshot merged",
			zap.String("file", path),
			zap.Int("received", result.Received),
			zap.Int("created", result.Created),
			zap.Int("updated", result.Updated),
			zap.Int("unchanged", result.Unchanged),
			zap.Int("revived", result.Revived),
			zap.Int("removed", result.Removed),
			zap.Int("rejected", result.Rejected),
			zap.Int("changes", len(result.Changes)),
		)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(engine.ClientView()); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// readPayload returns the delimited text held in path. JSON payloads are unwrapped with decode.
func readPayload(path string, decode func(io.Reader) (string, error)) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		value, err := decode(bytes.NewReader(trimmed))
		if err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		return value, nil
	}
	return string(data), nil
}
