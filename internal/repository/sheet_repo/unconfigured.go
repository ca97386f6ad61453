package sheet_repo

import (
	"context"
	"fortune_wheel/internal/model"
	"fortune_wheel/internal/repository"
)

type unconfigured struct {
	err error
}

// NewUnconfiguredRepository возвращает ошибку конфигурации на каждый вызов.
// Используется, когда таблица не настроена, чтобы колесо продолжало работать
func NewUnconfiguredRepository(err error) repository.ParticipantRepository {
	return &unconfigured{err: err}
}

func (u *unconfigured) Append(context.Context, model.Participant) error {
	return u.err
}

func (u *unconfigured) List(context.Context) ([]model.Participant, error) {
	return nil, u.err
}
