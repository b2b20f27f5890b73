package services

import (
	"context"
	"errors"
	"fmt"
)

// Shutdown stops the HTTP server and then closes storage. It is safe to
// call on a manager that was never initialized.
func (m *Manager) Shutdown(ctx context.Context) error {
	var errs []error

	if m.server != nil {
		m.logger.Info("Stopping HTTP server...")
		if err := m.server.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if m.backend != nil {
		m.logger.Info("Closing storage...")
		if err := m.backend.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("error closing storage: %w", err))
		}
	}

	return errors.Join(errs...)
}
