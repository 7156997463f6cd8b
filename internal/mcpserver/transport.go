package mcpserver

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// shutdownTimeout bounds the SSE drain on Stop.
const shutdownTimeout = 5 * time.Second

// StdioService runs the MCP protocol over stdin/stdout as a lifecycle
// service. Stop cancels the listen loop; EOF on stdin also ends it.
type StdioService struct {
	stdio  *server.StdioServer
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// StdioService returns the stdio transport for s.
func (s *Server) StdioService() *StdioService {
	ctx, cancel := context.WithCancel(context.Background())
	return &StdioService{
		stdio:  server.NewStdioServer(s.mcp),
		logger: s.logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start serves until Stop is called or stdin closes.
func (sv *StdioService) Start() error {
	sv.logger.Info("mcp stdio transport serving")
	err := sv.stdio.Listen(sv.ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Stop ends the listen loop.
func (sv *StdioService) Stop() {
	sv.cancel()
}

// SSEService runs the MCP protocol over HTTP server-sent events as a
// lifecycle service.
type SSEService struct {
	sse    *server.SSEServer
	addr   string
	logger *zap.Logger
}

// SSEService returns the SSE transport for s, bound to addr on Start.
func (s *Server) SSEService(addr string) *SSEService {
	return &SSEService{
		sse:    server.NewSSEServer(s.mcp),
		addr:   addr,
		logger: s.logger,
	}
}

// Start serves until Stop shuts the listener down.
func (sv *SSEService) Start() error {
	sv.logger.Info("mcp sse transport serving", zap.String("addr", sv.addr))
	err := sv.sse.Start(sv.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight sessions and closes the listener.
func (sv *SSEService) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := sv.sse.Shutdown(ctx); err != nil {
		sv.logger.Warn("sse shutdown failed", zap.Error(err))
	}
}
