package participant

import (
	"context"
	"errors"
	"fmt"
	"fortune_wheel/internal/metrics"
	"fortune_wheel/internal/model"

	"go.uber.org/zap"
)

// Save проверяет форму, ставит дату и дописывает участника в таблицу.
// Невалидная форма до хранилища не доходит
func (s *serv) Save(ctx context.Context, p model.Participant) error {
	p = normalize(p)

	if err := s.check(p); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			metrics.LeadSaved("invalid")
		}
		return err
	}

	p.CreatedAt = s.now().In(s.loc).Format(createdAtLayout)

	if err := s.repo.Append(ctx, p); err != nil {
		metrics.LeadSaved("failed")
		s.log.Error("failed to save participant", zap.Error(err))
		return fmt.Errorf("save participant: %w", err)
	}

	metrics.LeadSaved("saved")
	s.log.Info("participant saved", zap.String("created_at", p.CreatedAt))
	return nil
}
