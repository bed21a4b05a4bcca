package machines

import (
	"context"
	"errors"
	"log/slog"

	"github.com/reusee/archbtw/tokens"
)

// Execute runs the machine to completion.
// Unknown keywords are logged; the debug keyword writes a trace line to Debug.
func (m *Machine) Execute(ctx context.Context) (err error) {
	m.Run(func(intr *Interrupt, e error) bool {
		if e != nil {
			var unknown *UnknownKeywordError
			if errors.As(e, &unknown) {
				args := []any{
					"keyword", unknown.Token.Text,
					"pos", unknown.Token.Pos.String(),
					"ip", m.IP,
				}
				if unknown.Suggestion != tokens.Unknown {
					args = append(args, "suggestion", unknown.Suggestion.String())
				}
				m.Logger.WarnContext(ctx, "unknown keyword", args...)
				return true
			}
			err = e
			return false
		}
		if intr != nil && intr.Debug {
			if e := m.writeDebug(); e != nil {
				m.Logger.ErrorContext(ctx, "write debug line", slog.Any("error", e))
			}
		}
		return true
	})
	return
}
