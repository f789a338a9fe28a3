package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for the unregister channel
	ClientChannelBuffer = 10
)

// Connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Stream-only event types. Economy events keep their bus type names.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes holds a comma separated event type filter
const QueryParamTypes = "types"

// Response headers
const (
	HeaderContentType       = "Content-Type"
	HeaderCacheControl      = "Cache-Control"
	HeaderConnection        = "Connection"
	HeaderValueEventStream  = "text/event-stream"
	HeaderValueNoCache      = "no-cache"
	HeaderValueKeepAlive    = "keep-alive"
	ErrMsgStreamUnsupported = "Streaming not supported"
	ErrMsgHubStopped        = "Event stream is shutting down"
)

// Log messages
const (
	LogMsgClientConnected      = "SSE client connected"
	LogMsgClientDisconnected   = "SSE client disconnected"
	LogMsgEventBroadcast       = "Broadcasting SSE event"
	LogMsgBroadcastDropped     = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError           = "Failed to write SSE event"
	LogMsgSubscriberRegistered = "SSE subscriber registered for event types"
)
