package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath   = "path"
	KeyFile   = "file"
	KeyRoute  = "route"
	KeyHref   = "href"
	KeyCount  = "count"
	KeyPort   = "port"
	KeyOutput = "output"
	KeyError  = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr   { return slog.String(KeyPath, p) }
func File(f string) slog.Attr   { return slog.String(KeyFile, f) }
func Route(r string) slog.Attr  { return slog.String(KeyRoute, r) }
func Href(h string) slog.Attr   { return slog.String(KeyHref, h) }
func Count(n int) slog.Attr     { return slog.Int(KeyCount, n) }
func Port(p int) slog.Attr      { return slog.Int(KeyPort, p) }
func Output(o string) slog.Attr { return slog.String(KeyOutput, o) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
