package chatbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type WelcomeResponse struct {
	BotName string `json:"bot_name"`
	Message string `json:"message"`
}

// ChatRequest is decoded loosely: any JSON value under "message" is echoed
// in its text form.
type ChatRequest map[string]any

// Message returns the "message" value as text, or "" when missing or null.
func (r ChatRequest) Message() string {
	v, ok := r["message"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

type ChatResponse struct {
	Response string `json:"response"`
}

type Server struct {
	cfg      Config
	echo     *echo.Echo
	requests *prometheus.CounterVec
}

func NewServer(cfg Config) *Server {
	registry := prometheus.NewRegistry()
	s := &Server{
		cfg:  cfg,
		echo: echo.New(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_requests_total",
				Help: "Requests served by the chatbot endpoint",
			},
			[]string{"route", "status"},
		),
	}
	registry.MustRegister(s.requests)

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug().Str("op", "chatbot/server").Msgf("%s %s -> %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	s.echo.Use(s.countRequests)

	s.echo.GET("/api/welcome", s.handleWelcome)
	s.echo.POST("/api/chat", s.handleChat)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	return s
}

// Handler exposes the router for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Reply(message string) string {
	return fmt.Sprintf("%s: You said '%s'", s.cfg.BotName, message)
}

func (s *Server) handleWelcome(c echo.Context) error {
	return c.JSON(http.StatusOK, WelcomeResponse{
		BotName: s.cfg.BotName,
		Message: s.cfg.WelcomeMessage,
	})
}

func (s *Server) handleChat(c echo.Context) error {
	var req ChatRequest
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be a JSON object")
	}
	return c.JSON(http.StatusOK, ChatResponse{Response: s.Reply(req.Message())})
}

func (s *Server) countRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		status := c.Response().Status
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
		}
		s.requests.WithLabelValues(c.Path(), strconv.Itoa(status)).Inc()
		return err
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("op", "chatbot/server").Msgf("Chatbot %q listening on %s", s.cfg.BotName, s.cfg.Addr)
		errCh <- s.echo.Start(s.cfg.Addr)
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}
