package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/apperrors"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct {
	// now is overridable so tests can pin the current billing period.
	now func() time.Time
}

func (s *BaseService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}

// GetLogger gets the request-scoped logger from context.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning.
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
