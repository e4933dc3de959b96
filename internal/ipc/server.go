package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/satococoa/deskshell/internal/errors"
	"github.com/satococoa/deskshell/internal/gateway"
)

const maxRequestSize = 1 << 20

// Gateway is the subset of *gateway.Gateway the server drives
type Gateway interface {
	Execute(ctx context.Context, line string) (gateway.Reply, error)
	CurrentDirectory() string
	Completions(ctx context.Context, partial, fullLine string) ([]string, error)
}

// Server answers requests read from a host pipe, one at a time
type Server struct {
	gw     Gateway
	logger *zap.Logger
}

// NewServer creates a server over gw
func NewServer(gw Gateway, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{gw: gw, logger: logger}
}

// Serve reads requests from r and writes responses to w until r is exhausted
// or a response requests shutdown.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestSize)
	out := newResponseWriter(w)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		resp := s.handleLine(ctx, line)
		if err := out.Write(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}

		if resp.Shutdown {
			s.logger.Info("shutdown requested", zap.Int("id", resp.ID))
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	return nil
}

func (s *Server) handleLine(ctx context.Context, line string) Response {
	var req Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		s.logger.Warn("malformed request", zap.Error(err))
		return Response{Error: &Error{Kind: ErrorKindProtocol, Message: fmt.Sprintf("malformed request: %v", err)}}
	}
	return s.Handle(ctx, req)
}

// Handle dispatches a single request to the gateway
func (s *Server) Handle(ctx context.Context, req Request) Response {
	resp := Response{ID: req.ID}

	switch req.Method {
	case MethodExecute:
		reply, err := s.gw.Execute(ctx, req.Command)
		if err != nil {
			resp.Error = toError(err)
			return resp
		}
		resp.Output = reply.Output
		resp.Shutdown = reply.Shutdown
	case MethodCurrentDirectory:
		resp.Directory = s.gw.CurrentDirectory()
	case MethodCompletions:
		suggestions, err := s.gw.Completions(ctx, req.Partial, req.FullLine)
		if err != nil {
			resp.Error = toError(err)
			return resp
		}
		resp.Suggestions = suggestions
	default:
		resp.Error = &Error{
			Kind:    ErrorKindProtocol,
			Message: errors.UnknownMethod(req.Method, SupportedMethods()).Error(),
		}
	}

	return resp
}

func toError(err error) *Error {
	return &Error{
		Kind:    errors.KindOf(err).String(),
		Message: err.Error(),
	}
}
