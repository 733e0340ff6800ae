package server

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"strconv"

	"feed-engagement/internal/conf"
	"feed-engagement/internal/domain"
	"feed-engagement/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"
)

// ProviderSet is server providers.
var ProviderSet = wire.NewSet(NewHTTPServer)

// NewHTTPServer new an HTTP server exposing the engine's operations as plain
// JSON endpoints.
func NewHTTPServer(c *conf.Server, svc *service.EngagementService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Network != "" {
			opts = append(opts, http.Network(c.Http.Network))
		}
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		opts = append(opts, http.Timeout(c.Http.Timeout()))
	}
	srv := http.NewServer(opts...)
	helper := log.NewHelper(logger)

	srv.HandleFunc("/v1/events", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodPost {
			nethttp.Error(w, "method not allowed", nethttp.StatusMethodNotAllowed)
			return
		}
		var req service.RecordEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			nethttp.Error(w, err.Error(), nethttp.StatusBadRequest)
			return
		}
		reply, err := svc.RecordEvent(r.Context(), &req)
		if err != nil {
			writeError(w, helper, err)
			return
		}
		writeJSON(w, helper, nethttp.StatusCreated, reply)
	})

	srv.HandleFunc("/v1/journeys", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodPost {
			nethttp.Error(w, "method not allowed", nethttp.StatusMethodNotAllowed)
			return
		}
		var req service.RecordJourneyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			nethttp.Error(w, err.Error(), nethttp.StatusBadRequest)
			return
		}
		reply, err := svc.RecordJourney(r.Context(), &req)
		if err != nil {
			writeError(w, helper, err)
			return
		}
		writeJSON(w, helper, nethttp.StatusOK, reply)
	})

	srv.HandleFunc("/v1/rollups/recompute", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodPost {
			nethttp.Error(w, "method not allowed", nethttp.StatusMethodNotAllowed)
			return
		}
		var req service.BulkRecomputeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			nethttp.Error(w, err.Error(), nethttp.StatusBadRequest)
			return
		}
		reply, err := svc.BulkRecompute(r.Context(), &req)
		if err != nil {
			writeError(w, helper, err)
			return
		}
		writeJSON(w, helper, nethttp.StatusOK, reply)
	})

	srv.HandleFunc("/v1/rollup", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodGet {
			nethttp.Error(w, "method not allowed", nethttp.StatusMethodNotAllowed)
			return
		}
		itemID, err := strconv.ParseInt(r.URL.Query().Get("item_id"), 10, 64)
		if err != nil {
			nethttp.Error(w, "invalid item_id", nethttp.StatusBadRequest)
			return
		}
		reply, err := svc.GetRollup(r.Context(), &service.GetRollupRequest{ItemID: itemID})
		if err != nil {
			writeError(w, helper, err)
			return
		}
		writeJSON(w, helper, nethttp.StatusOK, reply)
	})

	return srv
}

func writeJSON(w nethttp.ResponseWriter, helper *log.Helper, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		helper.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w nethttp.ResponseWriter, helper *log.Helper, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrUnknownSurface),
		errors.Is(err, domain.ErrInvalidPosition),
		errors.Is(err, domain.ErrNotJourneyCategory):
		nethttp.Error(w, err.Error(), nethttp.StatusBadRequest)
	default:
		helper.Errorf("request failed: %v", err)
		nethttp.Error(w, "internal error", nethttp.StatusInternalServerError)
	}
}
