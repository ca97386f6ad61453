package participant

import (
	"context"
	"fmt"
	"fortune_wheel/internal/model"

	"go.uber.org/zap"
)

func (s *serv) List(ctx context.Context) ([]model.Participant, error) {
	participants, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list participants", zap.Error(err))
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}
