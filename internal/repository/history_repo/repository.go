package history_repo

import (
	"context"
	"fortune_wheel/internal/model"
	"fortune_wheel/internal/repository"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type repo struct {
	kv     repository.KeyValue
	prefix string
	log    *zap.Logger
}

// NewHistoryRepository - история исходов поверх строкового хранилища.
// История хранится json-массивом под ключом prefix:sessionID
func NewHistoryRepository(kv repository.KeyValue, prefix string, log *zap.Logger) repository.HistoryRepository {
	return &repo{
		kv:     kv,
		prefix: prefix,
		log:    log,
	}
}

func (r *repo) key(sessionID string) string {
	return r.prefix + ":" + sessionID
}

// ReadAll - история от старых исходов к новым. Пустая, если не писалась или испорчена
func (r *repo) ReadAll(ctx context.Context, sessionID string) (model.History, error) {
	raw, ok, err := r.kv.Get(ctx, r.key(sessionID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return model.History{}, nil
	}

	h, err := Decode(raw)
	if err != nil {
		r.log.Warn("corrupted spin history, treating as empty",
			zap.String("session", sessionID),
			zap.Error(err),
		)
		return model.History{}, nil
	}
	return h, nil
}

// Append дописывает исход и возвращает историю после записи
func (r *repo) Append(ctx context.Context, sessionID string, won bool) (model.History, error) {
	h, err := r.ReadAll(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	h = h.Append(won)

	raw, err := Encode(h)
	if err != nil {
		return nil, err
	}
	if err := r.kv.Set(ctx, r.key(sessionID), raw); err != nil {
		return nil, err
	}
	return h, nil
}

func (r *repo) Clear(ctx context.Context, sessionID string) error {
	return r.kv.Delete(ctx, r.key(sessionID))
}

// Encode - история в json-массив
func Encode(h model.History) (string, error) {
	if h == nil {
		h = model.History{}
	}
	b, err := json.Marshal([]bool(h))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode разбирает json-массив булевых значений.
// Лишние старые записи сверх емкости отбрасываются
func Decode(raw string) (model.History, error) {
	var values []bool
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = []bool{}
	}
	return model.History(values).Last(model.HistoryCapacity), nil
}
