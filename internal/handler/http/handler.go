package http

import (
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  ratelimit.Limiter

	requestTimeout    time.Duration
	trustProxyHeaders bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter ratelimit.Limiter, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		limiter:           limiter,
		requestTimeout:    cfg.RequestTimeout,
		trustProxyHeaders: cfg.TrustProxyHeaders,
		logger:            logger,
	}
}
