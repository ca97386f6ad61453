package wheel

import (
	"context"
	"fmt"
	"fortune_wheel/internal/metrics"
	"fortune_wheel/internal/model"

	"go.uber.org/zap"
)

// Spin принимает решение по спину и помечает сессию как крутящую.
// Пока спин не завершен через Complete, новые спины отклоняются с ErrSpinInProgress
func (s *serv) Spin(ctx context.Context, sessionID string) (*model.Decision, error) {
	// Незавершенный спин: либо отказ, либо фиксация брошенного
	if pending, ok := s.stateRepo.Pending(sessionID); ok {
		if pending.Committing || s.now().Sub(pending.StartedAt) < s.cfg.StaleAfter() {
			metrics.SpinRejected()
			return nil, ErrSpinInProgress
		}

		stale, ok := s.stateRepo.Claim(sessionID, pending.Decision.SpinID)
		if !ok {
			metrics.SpinRejected()
			return nil, ErrSpinInProgress
		}
		if _, err := s.commitClaimed(ctx, sessionID, stale.Decision); err != nil {
			return nil, fmt.Errorf("commit stale spin: %w", err)
		}
		s.log.Info("stale spin committed",
			zap.String("session", sessionID),
			zap.String("spin_id", stale.Decision.SpinID),
			zap.Bool("won", stale.Decision.Won),
		)
	}

	history, err := s.historyRepo.ReadAll(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	// КЛЮЧЕВОЙ ВЫЗОВ, решение больше не меняется
	decision := Decide(history, s.rnd, s.params())
	decision.SpinID = s.newID()

	if !s.stateRepo.Begin(sessionID, decision, s.now()) {
		metrics.SpinRejected()
		return nil, ErrSpinInProgress
	}

	metrics.SpinDecided(string(decision.Strategy), decision.Won)
	s.log.Debug("spin decided",
		zap.String("session", sessionID),
		zap.String("spin_id", decision.SpinID),
		zap.String("strategy", string(decision.Strategy)),
		zap.Float64("probability", decision.Probability),
		zap.Bool("won", decision.Won),
		zap.Int("prize_index", decision.PrizeIndex),
	)

	return &decision, nil
}
