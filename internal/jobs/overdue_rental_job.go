package jobs

import (
	"context"
	"time"

	"rentalhub/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// overdueSweepSchedule fires at the top of every hour.
const overdueSweepSchedule = "0 0 * * * *"

// OverdueRentalJob periodically sweeps for delivered orders whose rental
// period has ended without a return. Results are logged for ops follow-up;
// the job itself takes no corrective action.
type OverdueRentalJob struct {
	handler queries.GetOverdueRentalsQueryHandler
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewOverdueRentalJob creates the hourly overdue-rental sweep.
func NewOverdueRentalJob(handler queries.GetOverdueRentalsQueryHandler, logger *zap.Logger) *OverdueRentalJob {
	return &OverdueRentalJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "overdue_rental_job")),
	}
}

// Start schedules the sweep. The first run happens at the next full hour.
func (j *OverdueRentalJob) Start() error {
	_, err := j.cron.AddFunc(overdueSweepSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Overdue rental job started (running hourly)")
	return nil
}

// Stop stops the sweep.
func (j *OverdueRentalJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Overdue rental job stopped")
}

func (j *OverdueRentalJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueRentalsQuery(time.Now())
	if err != nil {
		j.logger.Error("Overdue rental sweep failed to build query", zap.Error(err))
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.Error("Overdue rental sweep failed", zap.Error(err))
		return
	}

	for _, rental := range overdue {
		j.logger.Warn("Overdue rental",
			zap.String("order_id", rental.ID.String()),
			zap.String("order_number", rental.OrderNumber),
			zap.Time("rental_end_date", rental.RentalEnd),
			zap.Int("days_overdue", rental.DaysOverdue),
		)
	}
}
