// Package rpc implements the JSON-RPC 2.0 client used to talk to a node
// over a line-delimited TCP stream: the wire envelope, the connection and
// response correlation, typed method wrappers, and the argument parsing
// that must happen before any request is sent.
package rpc

import "encoding/json"

// Request represents a JSON-RPC 2.0 request sent to the node.
//
// Params is declared as interface{} because the node accepts both
// positional arrays (getBlock, getOutput) and named objects
// (getBlockChain, inventory).
type Request struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
	ID      uint64      `json:"id"`
}

// Response represents a JSON-RPC 2.0 response from the node.
//
// ID is a pointer: the node replies with "id": null when it could not
// parse the originating request, and that case must stay distinguishable
// from id 0. Result is kept as raw bytes so each caller can decode the
// shape it expects.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *uint64         `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is an error object returned by the node.
//
// Standard JSON-RPC 2.0 codes:
//
//	-32700  Parse error
//	-32600  Invalid request
//	-32601  Method not found
//	-32602  Invalid params
//	-32603  Internal error
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
