package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/tycrek/eye/common/logger"
)

// Telemetry serves pprof on a loopback-only listener so the relay port
// stays free of debug handlers.
type Telemetry struct {
	log  *logger.Logger
	addr string
}

// New creates telemetry components
func New(pprofPort int, log *logger.Logger) *Telemetry {
	return &Telemetry{
		log:  log,
		addr: fmt.Sprintf("localhost:%d", pprofPort),
	}
}

// Start serves pprof in the background. A listener failure is logged and
// the relay keeps running.
func (t *Telemetry) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	srv := &http.Server{
		Addr:              t.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		t.log.Info("pprof listening", "addr", t.addr)
		if err := srv.ListenAndServe(); err != nil {
			t.log.Error("pprof server error", "error", err)
		}
	}()

	return nil
}
