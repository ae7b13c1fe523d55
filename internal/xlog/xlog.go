// Package xlog wraps zerolog behind the small print-style surface the
// toolchain's packages call into, so engine/vmtranslate/hasm don't import
// zerolog directly.
package xlog

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

// Toggle raises or lowers the active level. Verbose enables Debug output.
func Toggle(verbose bool) {
	if verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}
}

func Debug(args ...any) {
	log.Debug().Msg(sprint(args...))
}

func Debugf(format string, args ...any) {
	log.Debug().Msgf(format, args...)
}

func Info(args ...any) {
	log.Info().Msg(sprint(args...))
}

func Infof(format string, args ...any) {
	log.Info().Msgf(format, args...)
}

func Error(err error) {
	log.Error().Err(err).Send()
}

func sprint(args ...any) string {
	return fmt.Sprint(args...)
}
