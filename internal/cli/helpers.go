package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/tovenja/blocksift/internal/logging"
	"github.com/tovenja/blocksift/pkg/domain"
)

// createLogger configures the application logger. In verbose mode it writes
// to Stderr, keeping Stdout for the report itself.
func createLogger(verbose bool) *slog.Logger {
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// isTerminal reports whether stdout is an interactive terminal. Piped output
// falls back to plain text.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPassStart: func(ctx context.Context, e *domain.PassEvent) {
			logger.Debug("Pass Start", "search", e.Search, "commit", e.Commit)
		},
		OnBlockVisit: func(ctx context.Context, e *domain.BlockEvent) {
			if e.Matches > 0 {
				logger.Debug("Block Matched", "block_id", e.BlockID, "type", e.BlockType, "matches", e.Matches)
			}
		},
		OnMutation: func(ctx context.Context, e *domain.MutationEvent) {
			logger.Debug("Attribute Updated", "block_id", e.BlockID, "attribute", e.Attribute)
		},
		OnPassEnd: func(ctx context.Context, e *domain.PassEvent) {
			logger.Debug("Pass End", "search", e.Search, "count", e.Count)
		},
	}
}
