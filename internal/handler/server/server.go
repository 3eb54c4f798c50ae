package server

import (
	"context"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/handler"
	"github.com/bagdasarian/project-team-rules/internal/handler/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

type Server struct {
	app  *fiber.App
	addr string
	log  *zap.SugaredLogger
}

func NewServer(h *handler.Handler, addr string, requestTimeout time.Duration, log *zap.SugaredLogger) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           requestTimeout,
		WriteTimeout:          requestTimeout,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log.Named("access")))

	SetupRoutes(app, h)

	return &Server{
		app:  app,
		addr: addr,
		log:  log,
	}
}

// App отдает fiber-приложение, например для app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	s.log.Infow("server starting", "addr", s.addr)
	return s.app.Listen(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Infow("shutting down")
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return err
	}
	s.log.Infow("server stopped")
	return nil
}
