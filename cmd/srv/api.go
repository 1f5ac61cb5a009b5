package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ekranoplan/backend/internal/middleware"
	"github.com/ekranoplan/backend/pkg/router"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func (s *srv) startApi(*cli.Context) error {
	if s.configs.Auth.TokenSecret == "" {
		return errors.New("token secret must be set")
	}

	if err := s.loadDatabase(); err != nil {
		return err
	}

	var err error
	s.scyllaDBSession, err = s.loadScyllaDB(s.configs.ScyllaDB.KeySpace)
	if err != nil {
		return err
	}
	defer s.scyllaDBSession.Close()

	if err := s.loadRedis(); err != nil {
		return err
	}

	s.loadRepos()
	if err := s.loadVerifiers(); err != nil {
		return err
	}
	s.loadDomains()
	s.loadRouter()

	ctx, stop := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := s.configs.ApiServer
	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           s.router.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s.logger.Infof("Starting server on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		s.logger.Infof("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		s.logger.Errorf("Server stopped with error: %v", err)
		return err
	}

	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.configs, s.logger, s.db, s.node)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(middleware.AllowCors(s.configs.ApiServer.AllowOrigins))

	// User API
	router.GET(s.router, "/getMe", s.userDomain.GetMe)
	router.GET(s.router, "/getUser", s.userDomain.GetUser)

	// Channel API
	router.GET(s.router, "/getChannelPermissions", s.channelDomain.GetChannelPermissions)
	router.POST(s.router, "/createChannel", s.channelDomain.CreateChannel)

	// Message API
	router.GET(s.router, "/getMessages", s.messageDomain.GetMessages)
	router.GET(s.router, "/getMessage", s.messageDomain.GetMessage)
	router.POST(s.router, "/createMessage", s.messageDomain.CreateMessage)
}
