package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	agentDelivery "movi-agent/internal/agent/delivery/http"
	"movi-agent/internal/middleware"
	"movi-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Health payload detail
	backendURL    string
	llmConfigured bool

	agentHandler agentDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	BackendURL    string
	LLMConfigured bool

	AgentHandler agentDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             cfg.Logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            cfg.Middleware,
		backendURL:    cfg.BackendURL,
		llmConfigured: cfg.LLMConfigured,
		agentHandler:  cfg.AgentHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.agentHandler == nil {
		return errors.New("agent handler is required")
	}
	return nil
}
