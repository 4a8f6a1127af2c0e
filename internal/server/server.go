// Package server exposes the converter tools over MCP: JSON-RPC 2.0 messages,
// one per line, on stdin/stdout. The transport is deliberately thin; all
// decision logic lives in the query and convert packages behind the tools.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/wattwise/wattwise/internal/logger"
	"github.com/wattwise/wattwise/internal/tools"
)

// maxLineBytes caps one incoming JSON-RPC line.
const maxLineBytes = 1 << 20

// Server serves the tool registry to a single MCP client.
type Server struct {
	name      string
	version   string
	registry  *tools.Registry
	sessionID string

	in  io.Reader
	out io.Writer
	mu  sync.Mutex // serializes response writes
}

// New creates a server bound to stdin/stdout.
func New(name, version string, registry *tools.Registry) *Server {
	return NewWithIO(name, version, registry, os.Stdin, os.Stdout)
}

// NewWithIO creates a server on explicit streams. Used by tests.
func NewWithIO(name, version string, registry *tools.Registry, in io.Reader, out io.Writer) *Server {
	return &Server{
		name:      name,
		version:   version,
		registry:  registry,
		sessionID: uuid.NewString(),
		in:        in,
		out:       out,
	}
}

// Run reads requests until EOF or context cancellation.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("mcp session %s: serving %s %s", s.sessionID, s.name, s.version)

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		s.handleLine(line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request stream: %w", err)
	}

	logger.Info("mcp session %s: client closed the stream", s.sessionID)
	return nil
}

func (s *Server) handleLine(line []byte) {
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		logger.Warn("mcp session %s: unparseable request: %v", s.sessionID, err)
		s.writeError(nil, codeParseError, "parse error: invalid JSON")
		return
	}

	logger.Debug("mcp session %s: <- %s", s.sessionID, req.Method)

	if req.isNotification() {
		// notifications/initialized and friends need no reply.
		return
	}

	switch req.Method {
	case "initialize":
		s.writeResult(req.ID, initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    capabilities{Tools: map[string]any{}},
			ServerInfo:      serverInfo{Name: s.name, Version: s.version},
		})

	case "ping":
		s.writeResult(req.ID, map[string]any{})

	case "tools/list":
		s.writeResult(req.ID, s.listTools())

	case "tools/call":
		s.callTool(req)

	default:
		s.writeError(req.ID, codeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}
}

func (s *Server) listTools() listToolsResult {
	defs := s.registry.Definitions()
	infos := make([]toolInfo, 0, len(defs))
	for _, d := range defs {
		infos = append(infos, toolInfo{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.InputSchema,
		})
	}
	return listToolsResult{Tools: infos}
}

func (s *Server) callTool(req request) {
	var params callToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.writeError(req.ID, codeInvalidParams, "invalid tools/call params")
		return
	}
	if params.Name == "" {
		s.writeError(req.ID, codeInvalidParams, "tools/call requires a tool name")
		return
	}

	output, err := s.registry.Execute(params.Name, params.Arguments)
	if err != nil {
		// Validation failures are data for the client, not protocol faults.
		logger.Info("mcp session %s: %s rejected input: %v", s.sessionID, params.Name, err)
		s.writeResult(req.ID, callToolResult{
			Content: []ContentPart{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
		return
	}

	logger.Debug("mcp session %s: %s ok", s.sessionID, params.Name)
	s.writeResult(req.ID, callToolResult{
		Content: []ContentPart{{Type: "text", Text: output}},
	})
}

func (s *Server) writeResult(id json.RawMessage, result any) {
	s.write(response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) writeError(id json.RawMessage, code int, message string) {
	if id == nil {
		id = json.RawMessage("null")
	}
	s.write(response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}})
}

func (s *Server) write(resp response) {
	data, err := json.Marshal(resp)
	if err != nil {
		logger.Error("mcp session %s: failed to serialize response: %v", s.sessionID, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(append(data, '\n')); err != nil {
		logger.Error("mcp session %s: failed to write response: %v", s.sessionID, err)
	}
}
