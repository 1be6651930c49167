package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/kervadec/gites-ledger/internal/pkg/logger"
)

// LiveSource delivers the current booking rows for one property, columns
// A–I, row 1 conventionally the header.
type LiveSource interface {
	Rows(ctx context.Context, property string) ([]Row, error)
}

// ArchiveSource delivers the historical booking rows for every property.
// Read once per reconciliation.
type ArchiveSource interface {
	Load(ctx context.Context) (map[string][]Row, error)
}

// Reconciler drives the per-property pipeline: normalize both sources,
// merge and deduplicate, split month-crossing bookings, sort.
type Reconciler struct {
	live       LiveSource
	archive    ArchiveSource
	properties []string
}

// NewReconciler wires a reconciler over the two sources. The property list
// is configuration, not discovery: only named properties are reconciled.
func NewReconciler(live LiveSource, archive ArchiveSource, properties []string) *Reconciler {
	return &Reconciler{live: live, archive: archive, properties: properties}
}

// Reconcile assembles the full ledger. Any live fetch or archive failure
// aborts the run with a single error; a partial ledger is never returned.
func (r *Reconciler) Reconcile(ctx context.Context) (Ledger, error) {
	runID := uuid.NewString()[:8]

	archives, err := r.archive.Load(ctx)
	if err != nil {
		logger.Error("archive load failed", "run_id", runID, "error", err)
		return nil, err
	}

	out := make(Ledger, len(r.properties))
	for _, property := range r.properties {
		raw, err := r.live.Rows(ctx, property)
		if err != nil {
			logger.Error("live fetch failed", "run_id", runID, "property", property, "error", err)
			return nil, &FetchError{Property: property, Err: err}
		}
		rows := reconcileProperty(raw, archives[property])
		out[property] = rows
		logger.Debug("property reconciled",
			"run_id", runID, "property", property,
			"live_rows", len(raw), "archive_rows", len(archives[property]),
			"ledger_rows", len(rows))
	}

	logger.Info("ledger reconciled", "run_id", runID, "properties", len(out))
	return out, nil
}

// reconcileProperty runs one property's rows through the pipeline stages in
// order. Each stage only ever consumes the previous stage's output.
func reconcileProperty(live, archive []Row) []Row {
	merged := Merge(normalizeAll(live), normalizeAll(archive))

	split := make([]Row, 0, len(merged))
	for _, row := range merged {
		split = append(split, SplitMonthBoundary(row)...)
	}

	SortChronological(split)
	return split
}
