package service

import (
	"context"
	"fortune_wheel/internal/model"
)

type WheelService interface {
	Spin(ctx context.Context, sessionID string) (*model.Decision, error)
	Complete(ctx context.Context, sessionID string, spinID string) (*model.SpinCompletion, error)
	History(ctx context.Context, sessionID string) (model.History, error)
	ResetHistory(ctx context.Context, sessionID string) error
	Prizes() []model.Prize
}

type ParticipantService interface {
	Save(ctx context.Context, participant model.Participant) error
	List(ctx context.Context) ([]model.Participant, error)
}

// TxManager - то, что сервисам нужно от trm.Manager
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type nopTxManager struct{}

// NopTxManager выполняет fn без транзакции, для хранилищ без транзакций (память, redis)
func NopTxManager() TxManager {
	return nopTxManager{}
}

func (nopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
