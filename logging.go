package klv

/*
logging.go carries the package's non-fatal diagnostics through a
structured logger rather than os.Stderr writes or silent drops: an
unrecognized top-level key or a checksum mismatch is worth surfacing
to an operator, but should never abort a decode. The default logger
discards everything; callers that want to see warnings call SetLogger.
*/

import (
	"io"

	"github.com/rs/zerolog"
)

var pkgLogger zerolog.Logger = zerolog.New(io.Discard)

// SetLogger replaces the package-level diagnostic logger. Pass
// zerolog.New(os.Stderr) (or any configured logger) to surface
// non-fatal decode warnings.
func SetLogger(l zerolog.Logger) { pkgLogger = l }

func logWarn(msg string) { pkgLogger.Warn().Msg(msg) }
