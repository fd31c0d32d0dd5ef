// Package contacts provides the composition root for contact reconciliation.
package contacts

import (
	"contact_sync_backend/internal/contacts/faillog"
	"contact_sync_backend/internal/contacts/ports"
	"contact_sync_backend/internal/contacts/service"
	"contact_sync_backend/platform/config"
	"contact_sync_backend/platform/logger"
)

// Module wires the contact reconciliation service.
type Module struct {
	service *service.Service
}

// NewModule creates a new contacts module.
func NewModule(dir ports.Directory, cfg config.PipelineConfig, runID string, log *logger.Logger) *Module {
	failures := faillog.New(cfg.GetFailureLogPath(), runID)
	svc := service.New(dir, cfg.GetMergePrimaryPolicy(), failures, log)
	return &Module{service: svc}
}

// Service returns the reconciliation service.
func (m *Module) Service() *service.Service {
	return m.service
}
