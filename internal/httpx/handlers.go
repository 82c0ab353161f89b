package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/you/go-tickets-report/internal/config"
	"github.com/you/go-tickets-report/internal/report"
	"github.com/you/go-tickets-report/internal/service"
	"github.com/you/go-tickets-report/internal/sources"
	"go.uber.org/zap"
)

const maxBodyBytes = 10 << 20

type Handlers struct {
	cfg *config.Config
	log *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{cfg: cfg, log: log}
}

func (h *Handlers) build(ctx context.Context, name string, body io.Reader) (report.Report, error) {
	svc := service.NewReportService(h.log, h.cfg.CityFrom, h.cfg.CityTo,
		[]sources.Source{sources.NewReader(name, body)}, h.cfg.HTTPTimeout)
	return svc.Build(ctx)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, sources.ErrMalformed):
		status = http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	http.Error(w, err.Error(), status)
}

// ReportHandler builds a report from the tickets document in the request body.
// ?format=text returns the plain text rendering instead of JSON.
func (h *Handlers) ReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		rep, err := h.build(r.Context(), "request", body)
		if err != nil {
			h.log.Warn("report request failed", zap.Error(err))
			writeError(w, err)
			return
		}

		if r.URL.Query().Get("format") == "text" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_ = report.WriteText(w, rep, false)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rep)
	}
}

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok\n")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ReportWSHandler answers every tickets document received on the socket with
// its report, or with {"error": "..."} when the document cannot be processed.
func (h *Handlers) ReportWSHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.log.Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()
		conn.SetReadLimit(maxBodyBytes)

		ctx := r.Context()
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					h.log.Info("websocket read stopped", zap.Error(err))
				}
				return
			}

			rep, err := h.build(ctx, "websocket", bytes.NewReader(msg))
			if err != nil {
				if werr := conn.WriteJSON(map[string]string{"error": err.Error()}); werr != nil {
					return
				}
				continue
			}
			if err := conn.WriteJSON(rep); err != nil {
				h.log.Info("websocket write failed", zap.Error(err))
				return
			}
		}
	}
}
