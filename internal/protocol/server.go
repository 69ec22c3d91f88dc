package protocol

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/voicepod/devicekit-go/internal/board"
	"github.com/voicepod/devicekit-go/internal/errors"
	"github.com/voicepod/devicekit-go/internal/tool"
)

// maxPayloadSize is the serialized budget for one tools/list page.
const maxPayloadSize = 8000

// listOverhead approximates the fixed envelope bytes around the tools array
// when checking the budget, matching the original accounting.
const listOverhead = 30

// Sender delivers outbound protocol text on the bidirectional channel. The
// transport owning the channel is external to this package.
type Sender interface {
	SendMessage(ctx context.Context, data []byte) error
}

// Scheduler marshals tool execution onto the single application worker.
type Scheduler interface {
	Schedule(fn func())
}

// Server handles the device side of the tool protocol.
//
// HandleMessage may be called from whatever goroutine delivers inbound text;
// parsing and argument validation run there, while tool callbacks always run
// on the scheduler's worker. The registry must be frozen before the first
// message arrives.
type Server struct {
	log       *slog.Logger
	registry  *tool.Registry
	sender    Sender
	scheduler Scheduler
	info      ServerInfo
	camera    board.Camera
}

// Option configures a Server during construction.
type Option func(*Server)

// WithCamera attaches the camera capability so initialize can configure the
// explain-image endpoint. Without it, vision capabilities are ignored.
func WithCamera(camera board.Camera) Option {
	return func(s *Server) {
		s.camera = camera
	}
}

// NewServer creates a protocol server over the given registry.
func NewServer(
	log *slog.Logger,
	registry *tool.Registry,
	sender Sender,
	scheduler Scheduler,
	info ServerInfo,
	opts ...Option,
) *Server {
	s := &Server{
		log:       log.With("component", "protocol"),
		registry:  registry,
		sender:    sender,
		scheduler: scheduler,
		info:      info,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// HandleMessage parses one inbound message and dispatches it.
//
// A malformed envelope (wrong version, missing method, non-numeric id) is
// logged and dropped with no reply: without a reliable id there is nothing to
// correlate a response to. Methods prefixed "notifications" are silently
// dropped. Every other failure produces a correlated error reply and never
// disturbs the registry or any device state.
func (s *Server) HandleMessage(ctx context.Context, data []byte) {
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		s.log.Error("Failed to parse message", "error", err)

		return
	}

	if req.JSONRPC != jsonrpcVersion {
		s.log.Error("Invalid JSONRPC version", "version", req.JSONRPC)

		return
	}

	if req.Method == "" {
		s.log.Error("Missing method")

		return
	}

	if strings.HasPrefix(req.Method, "notifications") {
		return
	}

	if params := bytes.TrimSpace(req.Params); len(params) > 0 && params[0] != '{' {
		s.log.Error("Invalid params", "method", req.Method)

		return
	}

	var idNum float64
	if len(req.ID) == 0 || json.Unmarshal(req.ID, &idNum) != nil {
		s.log.Error("Invalid id", "method", req.Method)

		return
	}

	id := int64(idNum)

	switch req.Method {
	case "initialize":
		s.handleInitialize(ctx, id, req.Params)
	case "tools/list":
		s.handleToolsList(ctx, id, req.Params)
	case "tools/call":
		s.handleToolsCall(ctx, id, req.Params)
	default:
		s.log.Error("Method not implemented", "method", req.Method)
		s.replyError(ctx, id, (&errors.MethodNotImplementedError{Method: req.Method}).Error())
	}
}

func (s *Server) handleInitialize(ctx context.Context, id int64, params json.RawMessage) {
	if len(params) > 0 {
		var p initializeParams
		if err := json.Unmarshal(params, &p); err == nil {
			s.applyVision(p)
		}
	}

	result := initializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    map[string]any{"tools": map[string]any{}},
		ServerInfo:      s.info,
	}

	s.replyResult(ctx, id, result)
}

// applyVision configures the camera explain endpoint from the orchestrator's
// vision capability. Absence of a camera is not an error.
func (s *Server) applyVision(p initializeParams) {
	vision := p.Capabilities.Vision
	if vision == nil || vision.URL == nil || s.camera == nil {
		return
	}

	s.log.Info("Configuring vision explain endpoint", "url", *vision.URL)
	s.camera.SetExplainEndpoint(*vision.URL, vision.Token)
}

func (s *Server) handleToolsList(ctx context.Context, id int64, params json.RawMessage) {
	var p listParams
	if len(params) > 0 {
		// Parse failures leave the defaults: start of list, no user tools.
		_ = json.Unmarshal(params, &p)
	}

	entries := make([]json.RawMessage, 0, s.registry.Len())
	size := len(`{"tools":[`)
	foundCursor := p.Cursor == ""
	nextCursor := ""

	for _, t := range s.registry.Tools() {
		if !foundCursor {
			if t.Name() != p.Cursor {
				continue
			}

			foundCursor = true
		}

		if t.IsUserOnly() && !p.WithUserTools {
			continue
		}

		entry, err := json.Marshal(t.WireEntry())
		if err != nil {
			s.log.Error("Failed to serialize tool", "tool", t.Name(), "error", err)
			s.replyError(ctx, id, "Failed to serialize tool "+t.Name())

			return
		}

		if size+len(entry)+1+listOverhead > maxPayloadSize {
			nextCursor = t.Name()

			break
		}

		entries = append(entries, entry)
		size += len(entry) + 1
	}

	// Zero progress under the budget is not actionable: the caller would
	// resupply the same cursor and loop forever. This applies to fresh and
	// continuation pages alike.
	if len(entries) == 0 && nextCursor != "" {
		limitErr := &errors.PayloadLimitError{Tool: nextCursor}
		s.log.Error("tools/list page made no progress", "tool", nextCursor)
		s.replyError(ctx, id, limitErr.Error())

		return
	}

	s.replyResult(ctx, id, listResult{Tools: entries, NextCursor: nextCursor})
}

func (s *Server) handleToolsCall(ctx context.Context, id int64, params json.RawMessage) {
	if len(params) == 0 {
		s.log.Error("tools/call: missing params")
		s.replyError(ctx, id, "Missing params")

		return
	}

	var p callParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.log.Error("tools/call: invalid params", "error", err)
		s.replyError(ctx, id, "Invalid params")

		return
	}

	if p.Name == "" {
		s.log.Error("tools/call: missing name")
		s.replyError(ctx, id, "Missing name")

		return
	}

	args := map[string]any{}

	if len(p.Arguments) > 0 {
		if err := json.Unmarshal(p.Arguments, &args); err != nil || args == nil {
			s.log.Error("tools/call: invalid arguments", "tool", p.Name)
			s.replyError(ctx, id, "Invalid arguments")

			return
		}
	}

	t := s.registry.Find(p.Name)
	if t == nil {
		unknownErr := &errors.UnknownToolError{Name: p.Name}
		s.log.Error("tools/call: unknown tool", "tool", p.Name)
		s.replyError(ctx, id, unknownErr.Error())

		return
	}

	bound, err := t.Properties().Bind(args)
	if err != nil {
		s.log.Error("tools/call: argument binding failed", "tool", p.Name, "error", err)
		s.replyError(ctx, id, err.Error())

		return
	}

	// Execute on the application worker, never on the delivery goroutine.
	// The reply is serialized asynchronously once the job returns. A slow
	// tool occupies the worker and queued calls wait behind it; that
	// backpressure is intentional.
	execCtx := context.WithoutCancel(ctx)

	s.scheduler.Schedule(func() {
		rv, err := t.Call(execCtx, bound)
		if err != nil {
			s.log.Error("tools/call: execution failed", "tool", t.Name(), "error", err)
			s.replyError(execCtx, id, err.Error())

			return
		}

		s.replyResult(execCtx, id, rv)
	})
}

func (s *Server) replyResult(ctx context.Context, id int64, result any) {
	raw, err := json.Marshal(result)
	if err != nil {
		s.log.Error("Failed to marshal result", "id", id, "error", err)

		return
	}

	s.send(ctx, response{JSONRPC: jsonrpcVersion, ID: id, Result: raw})
}

func (s *Server) replyError(ctx context.Context, id int64, message string) {
	s.send(ctx, response{
		JSONRPC: jsonrpcVersion,
		ID:      id,
		Error:   &responseError{Message: message},
	})
}

func (s *Server) send(ctx context.Context, resp response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.Error("Failed to marshal response", "id", resp.ID, "error", err)

		return
	}

	if err := s.sender.SendMessage(ctx, data); err != nil {
		s.log.Error("Failed to send response", "id", resp.ID, "error", err)
	}
}
