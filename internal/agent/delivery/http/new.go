package http

import (
	"github.com/gin-gonic/gin"

	"movi-agent/internal/agent"
	"movi-agent/pkg/log"
)

type Handler interface {
	Process(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc agent.UseCase
}

func New(l log.Logger, uc agent.UseCase) Handler {
	return handler{
		l:  l,
		uc: uc,
	}
}
