package usecase

import (
	"movi-agent/internal/agent"
	"movi-agent/internal/agent/pending"
	"movi-agent/internal/agent/repository"
	"movi-agent/internal/router"
	pkgLog "movi-agent/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	router  router.Router
	backend repository.Backend
	store   pending.Store
}

// New creates a new agent UseCase instance.
func New(
	l pkgLog.Logger,
	r router.Router,
	backend repository.Backend,
	store pending.Store,
) agent.UseCase {
	return &implUseCase{
		l:       l,
		router:  r,
		backend: backend,
		store:   store,
	}
}
