package usecases

import (
	"context"

	"jirabridge/internal/domain/mapping"
	"jirabridge/internal/shared/logger"
)

type mockMappingRepository struct {
	FindByTicketKeyFunc func(ctx context.Context, ticketKey string) (*mapping.Mapping, error)
	SaveFunc            func(ctx context.Context, m *mapping.Mapping) error

	findCalls []string
	saveCalls []*mapping.Mapping
}

func (r *mockMappingRepository) FindByTicketKey(ctx context.Context, ticketKey string) (*mapping.Mapping, error) {
	r.findCalls = append(r.findCalls, ticketKey)
	if r.FindByTicketKeyFunc != nil {
		return r.FindByTicketKeyFunc(ctx, ticketKey)
	}
	return nil, nil
}

func (r *mockMappingRepository) Save(ctx context.Context, m *mapping.Mapping) error {
	r.saveCalls = append(r.saveCalls, m)
	if r.SaveFunc != nil {
		return r.SaveFunc(ctx, m)
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
