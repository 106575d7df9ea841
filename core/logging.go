package core

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const DefaultTimeFormat = "2006-01-02 15:04:05"

// InitLogging configures the process-wide logger. It is called once from main
// before any other work happens.
func InitLogging(out io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: DefaultTimeFormat,
		NoColor:    !isTerminal(out),
	}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// GetLogger returns the global logger tagged with a component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
