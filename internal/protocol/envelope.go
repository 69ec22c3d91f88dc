package protocol

import "encoding/json"

// jsonrpcVersion is the required envelope version literal.
const jsonrpcVersion = "2.0"

// protocolVersion is the negotiated protocol revision reported by initialize.
const protocolVersion = "2024-11-05"

// request is the inbound envelope. ID stays raw until validated: a request
// without a recoverable integer id cannot be answered and is dropped.
type request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	ID      json.RawMessage `json:"id"`
	Params  json.RawMessage `json:"params"`
}

// response is the outbound envelope. Exactly one of Result and Error is set.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *responseError  `json:"error,omitempty"`
}

type responseError struct {
	Message string `json:"message"`
}

type initializeParams struct {
	Capabilities struct {
		Vision *struct {
			URL   *string `json:"url"`
			Token string  `json:"token"`
		} `json:"vision"`
	} `json:"capabilities"`
}

type initializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    map[string]any `json:"capabilities"`
	ServerInfo      ServerInfo     `json:"serverInfo"`
}

// ServerInfo identifies the device in the initialize reply.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type listParams struct {
	Cursor        string `json:"cursor"`
	WithUserTools bool   `json:"withUserTools"`
}

type listResult struct {
	Tools      []json.RawMessage `json:"tools"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}
