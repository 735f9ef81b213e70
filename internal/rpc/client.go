package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client owns a single long-lived TCP connection to the node's JSON-RPC
// endpoint. The protocol is one JSON object per line, one reply per
// request, with at most one request outstanding at a time. The request id
// counter is client state, starts at 1 and never repeats within a session.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
	nextID uint64
	log    zerolog.Logger
}

// Connect dials the node and returns a ready client.
func Connect(addr string, timeout time.Duration, log zerolog.Logger) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, &ConnError{Addr: addr, Err: err}
	}
	log.Info().Str("node", addr).Msg("connected")
	return NewClient(conn, log), nil
}

// NewClient wraps an established connection. Split out from Connect so
// tests can drive the client over an in-memory pipe.
func NewClient(conn net.Conn, log zerolog.Logger) *Client {
	return &Client{
		conn:   conn,
		reader: bufio.NewReader(conn),
		nextID: 1,
		log:    log,
	}
}

func (c *Client) Close() error { return c.conn.Close() }

// Call sends one request and blocks until its reply arrives. The context
// deadline, if any, is applied to the connection for the duration of the
// exchange; without a deadline the read blocks indefinitely, matching the
// node's no-timeout contract.
func (c *Client) Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	req := Request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.nextID,
	}
	c.nextID++

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("set deadline: %w", err)
		}
		defer c.conn.SetDeadline(time.Time{})
	}

	c.log.Debug().Str("method", method).Uint64("id", req.ID).Msg("sending request")
	if err := c.SendLine(string(body)); err != nil {
		return nil, err
	}

	return c.await(req.ID)
}

// await reads reply lines until the one matching id arrives. With a single
// outstanding request, arrival order and id order coincide, so any
// mismatch means the node misbehaved and is reported rather than dropped.
func (c *Client) await(id uint64) (json.RawMessage, error) {
	line, err := c.ReceiveLine()
	if err != nil {
		return nil, err
	}

	var resp Response
	if err := json.Unmarshal([]byte(line), &resp); err != nil {
		return nil, &ProtocolError{Reason: fmt.Sprintf("reply is not valid JSON-RPC: %v", err), Line: line}
	}

	if resp.ID == nil {
		// The node answers id null when it could not parse the request.
		reason := "reply carries null id"
		if resp.Error != nil {
			reason = fmt.Sprintf("node rejected request: %d %s", resp.Error.Code, resp.Error.Message)
		}
		return nil, &ProtocolError{Reason: reason, Line: line}
	}
	if *resp.ID != id {
		return nil, &ProtocolError{
			Reason: fmt.Sprintf("reply id %d does not match pending request %d", *resp.ID, id),
			Line:   line,
		}
	}
	if resp.Error != nil {
		return nil, &RemoteError{Code: resp.Error.Code, Message: resp.Error.Message}
	}

	c.log.Debug().Uint64("id", id).Msg("received reply")
	return resp.Result, nil
}

// SendLine writes one raw line to the node, appending the delimiter.
func (c *Client) SendLine(line string) error {
	if _, err := io.WriteString(c.conn, line+"\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrTransportClosed, err)
	}
	return nil
}

// ReceiveLine blocks until one reply line arrives and returns it without
// the delimiter. Only the \n delimiter and at most one \r before it are
// stripped (CRLF tolerance); everything else in the line is preserved
// verbatim for raw-mode echoing.
func (c *Client) ReceiveLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if line != "" && err == io.EOF {
			// Final unterminated line still counts as a reply.
			return trimLineEnding(line), nil
		}
		return "", fmt.Errorf("%w: %v", ErrTransportClosed, err)
	}
	return trimLineEnding(line), nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
