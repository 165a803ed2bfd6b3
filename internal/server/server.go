// Package server — HTTP-срез приложения: лидерборд, health-check и метрики.
// Логика минимальная: отсортированная выдача хранилища и ping БД.
package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"skillblog.ru/reputation-bot/internal/features/reputation"
)

// Pinger проверяет доступность базы. Реализуется *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server отдаёт лидерборд репутации по HTTP.
type Server struct {
	echo    *echo.Echo
	service *reputation.Service
	db      Pinger
	addr    string
}

// New создаёт HTTP-сервер и регистрирует маршруты.
func New(service *reputation.Service, db Pinger, addr string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:    e,
		service: service,
		db:      db,
		addr:    addr,
	}

	e.GET("/reputations", s.handleReputations)
	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return s
}

// Start блокирует до остановки сервера.
func (s *Server) Start() error {
	log.WithField("addr", s.addr).Info("HTTP-сервер запущен")
	err := s.echo.Start(s.addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown останавливает сервер, дождавшись текущих запросов.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// handleReputations — GET /reputations.
// Все записи по убыванию репутации; при равных очках порядок хранилища.
func (s *Server) handleReputations(c echo.Context) error {
	records, err := s.service.Leaderboard(c.Request().Context())
	if err != nil {
		log.WithError(err).Error("Ошибка чтения лидерборда")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	if records == nil {
		records = []*reputation.Record{}
	}
	return c.JSON(http.StatusOK, records)
}

// handleHealth — GET /healthz. Живость процесса + доступность БД.
func (s *Server) handleHealth(c echo.Context) error {
	if err := s.db.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "db unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
