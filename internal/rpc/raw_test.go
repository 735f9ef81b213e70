package rpc

import (
	"bufio"
	"net"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeEchoesRepliesVerbatim(t *testing.T) {
	parseError := `{"jsonrpc":"2.0","error":{"code":-32700,"message":"Parse error"},"id":null}`
	result := `{"jsonrpc":"2.0","result":[],"id":7}`

	client, received := newTestClient(t, []string{parseError, result})

	input := "hi\n" + `{"jsonrpc":"2.0","method":"getBlockChain","id":7}` + "\n"
	var out strings.Builder
	err := client.Pipe(strings.NewReader(input), &out)
	require.NoError(t, err)

	// Malformed input is the node's concern: the parse-error reply is
	// printed like any other and the session continues to the next line.
	assert.Equal(t, parseError+"\n"+result+"\n", out.String())
	assert.Equal(t, "hi\n", <-received)
}

func TestPipeEndOfInputEndsSessionNormally(t *testing.T) {
	client, _ := newTestClient(t, nil)

	var out strings.Builder
	err := client.Pipe(strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestPipeTransportErrorWhileWaiting(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	t.Cleanup(func() { clientConn.Close() })
	go func() {
		r := bufio.NewReader(serverConn)
		_, _ = r.ReadString('\n')
		serverConn.Close()
	}()

	client := NewClient(clientConn, zerolog.Nop())
	var out strings.Builder
	err := client.Pipe(strings.NewReader("hello\n"), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransportClosed)
}
