// Package directory provides the composition root for the directory client.
package directory

import (
	"contact_sync_backend/internal/contacts/ports"
	"contact_sync_backend/internal/directory/client"
	"contact_sync_backend/platform/config"
	"contact_sync_backend/platform/logger"
)

// Module wires the directory client.
type Module struct {
	client *client.Client
}

// NewModule creates a new directory module.
func NewModule(cfg config.DirectoryConfig, log *logger.Logger) *Module {
	return &Module{client: client.New(cfg, log)}
}

// Directory returns the wired directory port.
func (m *Module) Directory() ports.Directory {
	return m.client
}
