package http

import (
	"time"

	"github.com/MKhiriev/go-fare-card/internal/config"
	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/internal/utils"
)

const defaultHeartbeatInterval = 15 * time.Second

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	heartbeat      time.Duration
	limiter        *sessionLimiter
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	heartbeat := cfg.HeartbeatInterval
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeatInterval
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		heartbeat:      heartbeat,
		limiter:        newSessionLimiter(cfg.SessionRate, cfg.SessionBurst),
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
