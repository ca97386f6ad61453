package wheel

import (
	"context"
	"fortune_wheel/internal/model"
)

func (s *serv) History(ctx context.Context, sessionID string) (model.History, error) {
	return s.historyRepo.ReadAll(ctx, sessionID)
}

// ResetHistory очищает историю сессии. Незавершенный спин не трогается
func (s *serv) ResetHistory(ctx context.Context, sessionID string) error {
	return s.historyRepo.Clear(ctx, sessionID)
}
