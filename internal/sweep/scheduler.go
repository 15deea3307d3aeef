package sweep

import (
	"context"

	"community-events/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// NewScheduler wires the sweep runner onto a cron schedule. The returned
// cron is not started; the caller owns its lifecycle.
func NewScheduler(runner *Runner, spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		runner.RunAll(context.Background())
	})
	if err != nil {
		return nil, err
	}
	logger.WithComponent("sweep").Info("sweeps scheduled", zap.String("spec", spec))
	return c, nil
}
