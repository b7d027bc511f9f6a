package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/carson-networks/finpro-ledger/internal/logging"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type statusBody struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

type Handler struct {
	Backend string
	DB      pinger
}

// NewHandler reports on backend. db is nil for the local backend.
func NewHandler(backend string, db pinger) Handler {
	return Handler{Backend: backend, DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	body := statusBody{Status: "ok", Backend: h.Backend}
	code := http.StatusOK
	var pingErr error
	if h.DB != nil {
		stopTimer := logData.AddTiming("pingMs")
		pingErr = h.DB.PingContext(req.Context())
		stopTimer()
		if pingErr != nil {
			body.Status = "unavailable"
			code = http.StatusServiceUnavailable
		}
	}
	logData.AddData("backend", h.Backend)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		return err
	}
	return pingErr
}
