package libs

import (
	"io"
	"os"

	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

const DefaultLogLevel = "info"

// NewLogger returns a TM logger on stdout filtered by level,
// e.g. "info" or "votes:debug,*:error".
func NewLogger(level, format string) (tmlog.Logger, error) {
	return NewLoggerWith(os.Stdout, level, format)
}

func NewLoggerWith(w io.Writer, level, format string) (tmlog.Logger, error) {
	logger := tmlog.NewTMLogger(tmlog.NewSyncWriter(w))
	if format == "json" {
		logger = tmlog.NewTMJSONLogger(tmlog.NewSyncWriter(w))
	}
	return tmflags.ParseLogLevel(level, logger, DefaultLogLevel)
}
