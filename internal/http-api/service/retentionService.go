package service

import (
	"context"
	"log/slog"
	"time"

	"gapod/internal/http-api/repository"
)

type RetentionService interface {
	SweepExpired() (int64, error)
	Run(ctx context.Context, interval time.Duration)
}

type retentionService struct {
	messageRepo     repository.MessageRepository
	retentionWindow time.Duration
	logger          *slog.Logger
}

func NewRetentionService(messageRepo repository.MessageRepository, retentionWindow time.Duration, logger *slog.Logger) RetentionService {
	return &retentionService{
		messageRepo:     messageRepo,
		retentionWindow: retentionWindow,
		logger:          logger,
	}
}

// SweepExpired physically deletes messages past the retention window;
// cascades remove their likes and comments. Reads stay correct without it
// (list queries filter expired rows themselves), so this only reclaims
// storage and is safe to call at any frequency.
func (s *retentionService) SweepExpired() (int64, error) {
	cutoff := time.Now().Add(-s.retentionWindow).UnixMilli()
	return s.messageRepo.DeleteOlderThan(cutoff)
}

// Run sweeps on a fixed interval until the context is cancelled. A sweep
// failure is logged and the loop keeps going; the next tick retries.
func (s *retentionService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("retention sweeper started", "interval", interval, "retention_window", s.retentionWindow)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("retention sweeper stopped")
			return
		case <-ticker.C:
			deleted, err := s.SweepExpired()
			if err != nil {
				s.logger.Error("retention sweep failed", "error", err)
				continue
			}
			if deleted > 0 {
				s.logger.Info("retention sweep completed", "deleted", deleted)
			}
		}
	}
}
