package repository

import (
	"context"
	"fortune_wheel/internal/model"
	"time"
)

// KeyValue - строковое хранилище по ключу, на котором лежит история спинов
type KeyValue interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

type HistoryRepository interface {
	ReadAll(ctx context.Context, sessionID string) (model.History, error)
	Append(ctx context.Context, sessionID string, won bool) (model.History, error)
	Clear(ctx context.Context, sessionID string) error
}

// PendingSpin - спин, решение по которому принято, но анимация еще не закончилась
type PendingSpin struct {
	Decision   model.Decision
	StartedAt  time.Time
	Committing bool // Исход уже пишется в историю
}

// SpinStateRepository - спин снимается только после записи исхода:
// Claim -> запись -> Finish, при ошибке записи Release
type SpinStateRepository interface {
	Begin(sessionID string, decision model.Decision, now time.Time) bool
	Pending(sessionID string) (PendingSpin, bool)
	Claim(sessionID string, spinID string) (PendingSpin, bool)
	Release(sessionID string, spinID string)
	Finish(sessionID string, spinID string) bool
}

type ParticipantRepository interface {
	Append(ctx context.Context, participant model.Participant) error
	List(ctx context.Context) ([]model.Participant, error)
}
