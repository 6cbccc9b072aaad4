package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Init sets up the global logger to append to the file at logFilePath. An
// empty path discards log output. It returns a closer the caller is
// responsible for closing.
func Init(logFilePath string) (io.Closer, error) {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if logFilePath == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(logFile)
	return logFile, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
