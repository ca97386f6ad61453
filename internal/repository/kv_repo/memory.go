package kv_repo

import (
	"context"
	"fortune_wheel/internal/repository"
	"sync"
)

type memory struct {
	mtx    sync.RWMutex
	values map[string]string
}

// NewMemoryKeyValue - хранилище в памяти процесса, для разработки и тестов
func NewMemoryKeyValue() repository.KeyValue {
	return &memory{
		values: make(map[string]string),
	}
}

func (m *memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memory) Set(_ context.Context, key string, value string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.values[key] = value
	return nil
}

func (m *memory) Delete(_ context.Context, key string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	delete(m.values, key)
	return nil
}
