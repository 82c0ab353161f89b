package httpx

import (
	"net/http"

	"github.com/you/go-tickets-report/internal/auth"
	"github.com/you/go-tickets-report/internal/config"
	"go.uber.org/zap"
)

func Routes(cfg *config.Config, log *zap.Logger) http.Handler {
	h := New(cfg, log)

	publicMux := http.NewServeMux()
	publicMux.HandleFunc("/auth/login", auth.LoginHandler(cfg))
	publicMux.HandleFunc("/healthz", HealthHandler())

	protectedMux := http.NewServeMux()
	protectedMux.HandleFunc("/reports", h.ReportHandler())
	protectedMux.HandleFunc("/ws/reports", h.ReportWSHandler())

	return auth.JWTMiddleware(publicMux, protectedMux, cfg, log)
}
