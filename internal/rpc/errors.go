package rpc

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments marks local validation failures: bad argument shape,
// bad hex, malformed output pointers. These are detected before any network
// I/O and are never retryable.
var ErrInvalidArguments = errors.New("invalid arguments")

// ErrTransportClosed is returned when the connection drops while a reply is
// outstanding. The session has no resumption semantics, so this is fatal
// for the invocation.
var ErrTransportClosed = errors.New("transport closed")

// ConnError is a failure to establish the TCP connection. It preserves the
// underlying OS cause (refusal, timeout) for display.
type ConnError struct {
	Addr string
	Err  error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("cannot connect to node at %s: %v", e.Addr, e.Err)
}

func (e *ConnError) Unwrap() error { return e.Err }

// ProtocolError is a reply line that cannot be paired with the outstanding
// request: invalid JSON, an id that matches no pending request, or the
// node's "id": null answer to a request it could not parse.
type ProtocolError struct {
	Reason string
	Line   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %s", e.Reason)
}

// RemoteError is a well-formed JSON-RPC error object from the node,
// surfaced with the server's code and message verbatim.
type RemoteError struct {
	Code    int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Message)
}
