package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/eventhub/internal/config"
	"github.com/dmitrijs2005/eventhub/internal/logging"
	"github.com/dmitrijs2005/eventhub/internal/services"
	"github.com/dmitrijs2005/eventhub/internal/storage"
	"github.com/dmitrijs2005/eventhub/internal/storage/kv"
	"golang.org/x/term"
)

// stack is everything a command needs: the opened store and the services
// hydrated from it.
type stack struct {
	repo    kv.Repository
	gateway *storage.Gateway
	events  services.EventService
	users   services.UserService
	auth    services.AuthService
	log     logging.Logger
}

func openGateway(ctx context.Context, cfg *config.Config, log logging.Logger) (kv.Repository, *storage.Gateway, error) {
	repo, err := kv.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Debug(ctx, "storage opened", "backend", cfg.StorageBackend)
	return repo, storage.NewGateway(repo, cfg.StorageTimeout, log), nil
}

func openStack(ctx context.Context, cfg *config.Config, log logging.Logger) (*stack, error) {
	repo, g, err := openGateway(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	st := &stack{repo: repo, gateway: g, log: log}
	if st.users, err = services.NewUserService(ctx, g, log); err != nil {
		_ = repo.Close()
		return nil, err
	}
	if st.events, err = services.NewEventService(ctx, g, cfg.SeedDemoEvents, log); err != nil {
		_ = repo.Close()
		return nil, err
	}
	if st.auth, err = services.NewAuthService(ctx, g, st.users, cfg.AutoProvision, log); err != nil {
		_ = repo.Close()
		return nil, err
	}
	return st, nil
}

func (s *stack) Close(ctx context.Context) {
	if err := s.repo.Close(); err != nil {
		s.log.Warn(ctx, "close storage", "error", err)
	}
}

// interactive reports whether stdin is a terminal, which selects readline
// over plain line scanning.
func (s *stack) interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
