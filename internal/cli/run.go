package cli

import (
	"context"
	"fmt"

	"github.com/tovenja/blocksift/internal/presentation/tui"
	"github.com/tovenja/blocksift/pkg/adapters/docfile"
	"github.com/tovenja/blocksift/pkg/domain"
)

// RunOptions contains all the configuration for the search and replace
// commands.
type RunOptions struct {
	DocPath       string
	ConfigPath    string
	Search        string
	Replace       string
	CaseSensitive bool
	Write         bool
	Plain         bool
	Verbose       bool
}

// RunSearch executes a dry pass against the document file and prints the
// report.
func RunSearch(ctx context.Context, opts RunOptions) error {
	return runPass(ctx, opts, domain.Session{
		Search:        opts.Search,
		CaseSensitive: opts.CaseSensitive,
	})
}

// RunReplace executes a committing pass and, with --write, persists the
// changed document back to disk.
func RunReplace(ctx context.Context, opts RunOptions) error {
	return runPass(ctx, opts, domain.Session{
		Search:        opts.Search,
		Replace:       opts.Replace,
		CaseSensitive: opts.CaseSensitive,
		Commit:        true,
	})
}

func runPass(ctx context.Context, opts RunOptions, session domain.Session) error {
	logger := createLogger(opts.Verbose)

	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	store, err := docfile.NewStore(opts.DocPath)
	if err != nil {
		return err
	}

	engine, err := createEngine(store, cfg, opts, logger)
	if err != nil {
		return err
	}

	report, err := engine.Evaluate(ctx, session)
	if err != nil {
		return err
	}

	if opts.Plain || !isTerminal() {
		fmt.Print(tui.PlainReport(session, report))
	} else {
		markdown := tui.FormatReport(session, report)
		render := tui.NewRenderer()
		out, rerr := render(markdown)
		if rerr != nil {
			fmt.Print(tui.PlainReport(session, report))
		} else {
			fmt.Print(out)
		}
	}

	if session.Commit && store.Dirty() {
		if !opts.Write {
			printSystemMessage("Document changed in memory. Re-run with --write to save %s.", store.Path())
			return nil
		}
		if err := store.Save(); err != nil {
			return err
		}
		printSystemMessage("Saved %s.", store.Path())
	}
	return nil
}
