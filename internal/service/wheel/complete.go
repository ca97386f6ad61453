package wheel

import (
	"context"
	"fmt"
	"fortune_wheel/internal/metrics"
	"fortune_wheel/internal/model"

	"go.uber.org/zap"
)

// Complete фиксирует спин после окончания анимации: исход пишется в историю, затем сессия освобождается.
// Пока идет запись, сессия занята
func (s *serv) Complete(ctx context.Context, sessionID string, spinID string) (*model.SpinCompletion, error) {
	if p, ok := s.stateRepo.Pending(sessionID); !ok || p.Decision.SpinID != spinID {
		return nil, ErrSpinNotFound
	}

	pending, ok := s.stateRepo.Claim(sessionID, spinID)
	if !ok {
		// Тот же спин уже завершается другим запросом
		return nil, ErrSpinInProgress
	}

	history, err := s.commitClaimed(ctx, sessionID, pending.Decision)
	if err != nil {
		return nil, fmt.Errorf("commit spin: %w", err)
	}

	return &model.SpinCompletion{
		Decision:   pending.Decision,
		HistoryLen: len(history),
	}, nil
}

// commitClaimed пишет исход захваченного спина. При успехе сессия освобождается,
// при ошибке спин снова ждет завершения
func (s *serv) commitClaimed(ctx context.Context, sessionID string, decision model.Decision) (model.History, error) {
	history, err := s.commit(ctx, sessionID, decision)
	if err != nil {
		s.stateRepo.Release(sessionID, decision.SpinID)
		return nil, err
	}
	s.stateRepo.Finish(sessionID, decision.SpinID)
	return history, nil
}

// commit - дописывает исход в историю одной транзакцией
func (s *serv) commit(ctx context.Context, sessionID string, decision model.Decision) (model.History, error) {
	var history model.History
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		history, err = s.historyRepo.Append(txCtx, sessionID, decision.Won)
		return err
	})
	if err != nil {
		s.log.Error("failed to append spin history",
			zap.String("session", sessionID),
			zap.String("spin_id", decision.SpinID),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.SpinCommitted(decision.Won)
	return history, nil
}
