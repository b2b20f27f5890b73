package services

import (
	"context"
	"errors"
	"net"
	"strconv"
)

// Start serves HTTP until ctx is canceled or the listener fails.
func (m *Manager) Start(ctx context.Context) error {
	if m.server == nil {
		return errors.New("manager not initialized")
	}

	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return errors.New("manager already started")
	}
	m.started = true
	m.mu.Unlock()

	addr := net.JoinHostPort(m.cfg.Server.Host, strconv.Itoa(m.cfg.Server.HTTPPort))
	m.logger.Info("Serving video listings", "addr", addr)
	return m.server.Start(ctx)
}
