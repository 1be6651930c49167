package api

import (
	"context"
	"net/http"

	"github.com/kervadec/gites-ledger/internal/ledger"
	"github.com/kervadec/gites-ledger/internal/pkg/httputil"
	"github.com/kervadec/gites-ledger/internal/pkg/logger"
)

// Reconciler assembles the complete per-property ledger, or fails as a
// whole. The engine's *ledger.Reconciler satisfies this.
type Reconciler interface {
	Reconcile(ctx context.Context) (ledger.Ledger, error)
}

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	reconciler Reconciler
}

// NewHandlers creates the handler set.
func NewHandlers(reconciler Reconciler) *Handlers {
	return &Handlers{reconciler: reconciler}
}

// GetGitesData serves the reconciled ledger for every configured property.
// The response is all-or-nothing: any source failure produces a single 500
// with a message payload, never a partial ledger.
func (h *Handlers) GetGitesData(w http.ResponseWriter, r *http.Request) {
	led, err := h.reconciler.Reconcile(r.Context())
	if err != nil {
		logger.Error("ledger request failed", "error", err)
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, led)
}

// HealthCheck reports liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]string{"status": "ok"})
}
