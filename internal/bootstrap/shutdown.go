package bootstrap

import (
	"context"
	"log/slog"
	"os"
)

// Stopper is anything shut down by context deadline, such as the HTTP server
type Stopper interface {
	Stop(ctx context.Context) error
}

// StreamCloser ends long-lived streams, such as the SSE hub
type StreamCloser interface {
	Stop()
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Streams StreamCloser
	Server  Stopper
	LogFile *os.File
}

// GracefulShutdown closes open event streams, since the server waits on
// active connections, then stops the server and closes the session log
// file. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Streams != nil {
		slog.Info(LogMsgStoppingEventStream)
		components.Streams.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)

	if components.LogFile != nil {
		if err := components.LogFile.Close(); err != nil {
			slog.Error(LogMsgLogFileCloseFailed, "error", err)
		}
	}
}
