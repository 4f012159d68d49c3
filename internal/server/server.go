// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-apple-pay/internal/config"
	"github.com/MKhiriev/go-apple-pay/internal/logger"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer binds the HTTP listener described by cfg and returns a Server
// ready to run the handler built by startup.
func NewServer(startup Startup, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if startup == nil {
		return nil, errNoHandlers
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	httpSrv, err := newHTTPServer(startup.Init(), cfg, logger)
	if err != nil {
		return nil, err
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      httpSrv,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) Addr() net.Addr {
	return s.httpServer.listener.Addr()
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	s.logger.Info().Msg("Launching HTTP server")
	g.Go(s.httpServer.RunServer)

	// stop on signal, cancellation or a failed Serve
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
