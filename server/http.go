package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"booking-backend/global"
)

type HTTP struct{ srv *http.Server }

func NewHTTP(host string, port int, handler http.Handler) *HTTP {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	return &HTTP{srv: &http.Server{Addr: addr, Handler: handler}}
}

func (h *HTTP) Addr() string { return h.srv.Addr }

func (h *HTTP) Start() {
	go func() {
		if err := h.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			global.Logger.Error().Err(err).Msg("http server")
		}
	}()
}

func (h *HTTP) Shutdown(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
