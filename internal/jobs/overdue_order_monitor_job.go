package jobs

import (
	"context"
	"log/slog"
	"time"

	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueSpec runs the monitor at the top of every minute.
const DefaultOverdueSpec = "0 * * * * *"

// OverdueOrderFinder is satisfied by queries.GetOverdueOrdersQueryHandler.
type OverdueOrderFinder interface {
	Handle(ctx context.Context, query queries.GetOverdueOrdersQuery) ([]queries.OverdueOrder, error)
}

// VendorBacklog is what the monitor reports for one vendor.
type VendorBacklog struct {
	VendorID   kernel.UUID
	VendorName string
	Orders     int
	MaxOverdue time.Duration
}

// OverdueOrderMonitorJob logs orders whose scheduled time has passed while
// they are still pending or accepted. It never changes an order.
type OverdueOrderMonitorJob struct {
	finder OverdueOrderFinder
	spec   string
	clock  kernel.Clock
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOverdueOrderMonitorJob creates the monitor. An empty spec means
// DefaultOverdueSpec; specs have a leading seconds field.
func NewOverdueOrderMonitorJob(finder OverdueOrderFinder, spec string, clock kernel.Clock, logger *slog.Logger) *OverdueOrderMonitorJob {
	if spec == "" {
		spec = DefaultOverdueSpec
	}
	if clock == nil {
		clock = kernel.SystemClock
	}
	return &OverdueOrderMonitorJob{
		finder: finder,
		spec:   spec,
		clock:  clock,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "overdue_order_monitor_job"),
	}
}

// Start schedules the monitor.
func (j *OverdueOrderMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		if _, err := j.RunOnce(context.Background()); err != nil {
			j.logger.Error("Overdue order scan failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Overdue order monitor started", "spec", j.spec)
	return nil
}

// Stop stops scheduling and waits for a running scan to finish.
func (j *OverdueOrderMonitorJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Overdue order monitor stopped")
}

// RunOnce scans for overdue orders and logs one warning per vendor, in the
// order the query returns them (by vendor name).
func (j *OverdueOrderMonitorJob) RunOnce(ctx context.Context) ([]VendorBacklog, error) {
	query, err := queries.NewGetOverdueOrdersQuery(j.clock())
	if err != nil {
		return nil, err
	}

	overdue, err := j.finder.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	var backlog []VendorBacklog
	for _, o := range overdue {
		n := len(backlog)
		if n == 0 || !backlog[n-1].VendorID.IsEqual(o.VendorID) {
			backlog = append(backlog, VendorBacklog{VendorID: o.VendorID, VendorName: o.VendorName})
			n++
		}
		b := &backlog[n-1]
		b.Orders++
		if o.Overdue > b.MaxOverdue {
			b.MaxOverdue = o.Overdue
		}
	}

	for _, b := range backlog {
		j.logger.WarnContext(ctx, "Vendor has overdue orders",
			"vendor_id", b.VendorID.String(),
			"vendor_name", b.VendorName,
			"orders", b.Orders,
			"max_overdue", b.MaxOverdue.String())
	}
	return backlog, nil
}
