package jobs

import (
	"context"
	"log/slog"
	"time"

	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule runs the backlog report once a minute.
const DefaultBacklogSchedule = "0 * * * * *"

const backlogTimeout = 10 * time.Second

type orderLister interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error)
}

// Backlog is the number of orders in each status.
type Backlog map[order.Status]int

// Open returns the number of orders that are not delivered yet.
func (b Backlog) Open() int {
	open := 0
	for status, count := range b {
		if !status.IsTerminal() {
			open += count
		}
	}
	return open
}

// OrderBacklogJob periodically logs the order backlog per status.
type OrderBacklogJob struct {
	handler  orderLister
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogJob creates a job that reports on schedule, a cron expression
// with a leading seconds field.
func NewOrderBacklogJob(handler orderLister, schedule string, logger *slog.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

// Run reads all orders once and logs the backlog.
func (j *OrderBacklogJob) Run(ctx context.Context) (Backlog, error) {
	orders, err := j.handler.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return nil, err
	}

	backlog := make(Backlog, len(order.Statuses()))
	for _, s := range order.Statuses() {
		backlog[s] = 0
	}
	for _, o := range orders {
		backlog[o.Status()]++
	}

	j.logger.InfoContext(ctx, "Order backlog",
		"total", len(orders),
		"open", backlog.Open(),
		string(order.Pending), backlog[order.Pending],
		string(order.Preparing), backlog[order.Preparing],
		string(order.OutForDelivery), backlog[order.OutForDelivery],
		string(order.Delivered), backlog[order.Delivered],
	)
	return backlog, nil
}

// Start schedules the job. It fails when the schedule does not parse.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), backlogTimeout)
		defer cancel()

		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
