package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"zaazu/internal/database"
	"zaazu/internal/types"
)

type (
	EventService interface {
		Record(ctx context.Context, params types.CreateLogEventParams) (*types.LogEvent, error)
		Recent(ctx context.Context, limit int) ([]*types.LogEvent, error)
	}

	eventService struct {
		events database.LogEventRepository
	}
)

const defaultRecentLimit = 50

func NewEventService(events database.LogEventRepository) EventService {
	return &eventService{events: events}
}

func (e *eventService) Record(ctx context.Context, params types.CreateLogEventParams) (*types.LogEvent, error) {
	event := &types.LogEvent{
		ID:         uuid.New(),
		Action:     params.Action,
		Details:    params.Details,
		User:       params.User,
		UserID:     params.UserID,
		SessionID:  params.SessionID,
		DeviceInfo: params.DeviceInfo,
	}
	if err := e.events.Save(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to persist log event")
	}
	return event, nil
}

func (e *eventService) Recent(ctx context.Context, limit int) ([]*types.LogEvent, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return e.events.FindRecent(ctx, limit)
}
