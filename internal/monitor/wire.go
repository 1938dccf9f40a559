package monitor

import (
	"go.uber.org/zap"

	"stockdesk/internal/config"
	monitorservice "stockdesk/internal/monitor/service"
)

func NewModule(ledger monitorservice.Ledger, cfg *config.Config, logger *zap.Logger) *Controller {
	svc := monitorservice.NewMonitorService(
		ledger,
		cfg.Ledger.LowStockThreshold,
		cfg.Ledger.MonitorPageSize,
	)
	return NewController(svc, logger)
}
