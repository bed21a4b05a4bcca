package programs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/reusee/archbtw/logs"
	"github.com/reusee/archbtw/machines"
	"github.com/reusee/archbtw/settings"
	"github.com/reusee/archbtw/tokens"
)

// Run loads and executes the program at path.
type Run func(ctx context.Context, path string) error

func (Module) Run(
	newMachine machines.NewMachine,
	checkLoops settings.CheckLoops,
	dumpPath settings.DumpPath,
	logger logs.Logger,
	logWriter logs.Writer,
) Run {
	return func(ctx context.Context, path string) (err error) {
		ctx = logs.WithSource(ctx, path)

		content, err := os.ReadFile(path)
		if err != nil {
			return &FileError{
				Path: path,
				Err:  err,
			}
		}

		src := tokens.NewSource(path, string(content))
		toks := tokens.Tokenize(src)
		logger.InfoContext(ctx, "tokenized", "tokens", len(toks))
		if logger.Enabled(ctx, slog.LevelDebug) {
			if err := tokens.WriteListing(logWriter, toks); err != nil {
				return err
			}
		}

		if checkLoops {
			if err := tokens.CheckLoops(src, toks); err != nil {
				return err
			}
		}

		m := newMachine(src, toks)
		if dumpPath != "" {
			defer func() {
				if e := dumpState(m, string(dumpPath)); e != nil {
					logger.ErrorContext(ctx, "dump state", "path", dumpPath, "error", e)
					if err == nil {
						err = e
					}
				}
			}()
		}

		start := time.Now()
		err = m.Execute(ctx)
		logger.InfoContext(ctx, "executed",
			"duration", time.Since(start),
			"ip", m.IP,
			"dp", m.DP,
		)
		return err
	}
}

func dumpState(m *machines.Machine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump state: %w", err)
	}
	if err := m.DumpState(f); err != nil {
		f.Close()
		return fmt.Errorf("dump state: %w", err)
	}
	return f.Close()
}
