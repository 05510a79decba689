// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/display"
	"github.com/MKhiriev/go-fare-card/internal/feed"
	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/utils"
	"github.com/MKhiriev/go-fare-card/models"
	"github.com/sourcegraph/conc"
)

type viewerService struct {
	feed         feed.Client
	resetTimeout time.Duration

	logger *logger.Logger
}

func NewViewerService(feedClient feed.Client, resetTimeout time.Duration, logger *logger.Logger) ViewerService {
	return &viewerService{feed: feedClient, resetTimeout: resetTimeout, logger: logger}
}

func (s *viewerService) Open(ctx context.Context, busID string) (ViewerSession, error) {
	if !utils.IsUUID(busID) {
		return nil, ErrInvalidBusID
	}

	log := s.logger.WithField("bus_id", busID)
	sessionCtx, cancel := context.WithCancel(ctx)

	session := &viewerSession{
		busID:   busID,
		cancel:  cancel,
		updates: make(chan models.DisplayState, 1),
		state:   models.IdleState(),
		logger:  log,
	}

	session.conn = s.feed.Open(sessionCtx, busID)
	viewer := display.NewViewer(s.resetTimeout, session.publish, log)

	session.wg.Go(func() {
		viewer.Run(sessionCtx, session.conn.Events())
	})

	log.Info().Msg("viewer session opened")
	return session, nil
}

type viewerSession struct {
	busID  string
	conn   feed.Connection
	cancel context.CancelFunc
	wg     conc.WaitGroup
	once   sync.Once

	updates chan models.DisplayState

	mu    sync.RWMutex
	state models.DisplayState

	logger *logger.Logger
}

func (s *viewerSession) BusID() string {
	return s.busID
}

func (s *viewerSession) Updates() <-chan models.DisplayState {
	return s.updates
}

func (s *viewerSession) State() models.DisplayState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *viewerSession) Close() {
	s.once.Do(func() {
		s.cancel()
		s.conn.Close()
		s.wg.Wait()
		close(s.updates)
		s.logger.Info().Msg("viewer session closed")
	})
}

// publish runs on the display actor goroutine, the only sender on updates.
// A pending state nobody read yet is replaced.
func (s *viewerSession) publish(state models.DisplayState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	select {
	case <-s.updates:
	default:
	}
	s.updates <- state
}
