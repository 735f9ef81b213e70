package rpc

import (
	"bufio"
	"fmt"
	"io"
)

// Pipe runs the raw interactive session: each input line is sent to the
// node unmodified, then the next reply line is printed verbatim. No JSON
// validation happens on the client side; malformed input comes back as the
// node's parse-error reply and is printed like any other, so one bad line
// never ends the session. Input exhaustion ends the loop normally; a
// transport failure while a reply is pending is fatal.
func (c *Client) Pipe(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := c.SendLine(scanner.Text()); err != nil {
			return err
		}
		reply, err := c.ReceiveLine()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, reply); err != nil {
			return fmt.Errorf("write reply: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
