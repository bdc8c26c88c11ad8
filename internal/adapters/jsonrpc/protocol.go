package jsonrpc

import (
	"go.trai.ch/edgetabs/internal/json"
)

const version = "2.0"

// Error codes defined by JSON-RPC 2.0.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is one line sent by the host. A request without ID is a notification.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response answers a request with an ID.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InitializeParams is the payload of "initialize".
type InitializeParams struct {
	PluginName    string `json:"pluginName"`
	Version       string `json:"version"`
	ActionKeyword string `json:"actionKeyword"`
}

// QueryParams is the payload of "query".
type QueryParams struct {
	Search        string `json:"search"`
	ActionKeyword string `json:"actionKeyword"`
}

// Result is one launcher result row.
type Result struct {
	Title         string `json:"Title"`
	SubTitle      string `json:"SubTitle"`
	IcoPath       string `json:"IcoPath"`
	Score         int    `json:"Score"`
	JSONRPCAction Action `json:"JsonRPCAction"`
}

// Action is the callback the host sends back when a result is chosen.
type Action struct {
	Method     string   `json:"method"`
	Parameters []string `json:"parameters"`
}

// nullID is the ID of responses to requests whose ID could not be read.
var nullID = json.RawMessage("null")
