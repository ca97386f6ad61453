package spin_state_repo

import (
	"fortune_wheel/internal/model"
	"fortune_wheel/internal/repository"
	"sync"
	"time"
)

// StateRepo хранит незавершенные спины по сессиям.
// Живет в памяти процесса: после рестарта незавершенный спин просто теряется
type StateRepo struct {
	mtx     sync.Mutex
	pending map[string]repository.PendingSpin
}

// NewSpinStateRepository Конструктор пустого репозитория
func NewSpinStateRepository() *StateRepo {
	return &StateRepo{
		pending: make(map[string]repository.PendingSpin),
	}
}

// Begin помечает сессию как крутящую колесо.
// Возвращает false, если у сессии уже есть незавершенный спин, состояние при этом не меняется
func (r *StateRepo) Begin(sessionID string, decision model.Decision, now time.Time) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, busy := r.pending[sessionID]; busy {
		return false
	}
	r.pending[sessionID] = repository.PendingSpin{
		Decision:  decision,
		StartedAt: now,
	}
	return true
}

// Pending Получение незавершенного спина сессии
func (r *StateRepo) Pending(sessionID string) (repository.PendingSpin, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.pending[sessionID]
	return p, ok
}

// Claim помечает спин как записываемый. Возвращает false, если spinID не совпадает
// или исход уже пишется другим вызовом. Сессия при этом остается занятой
func (r *StateRepo) Claim(sessionID string, spinID string) (repository.PendingSpin, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.pending[sessionID]
	if !ok || p.Decision.SpinID != spinID || p.Committing {
		return repository.PendingSpin{}, false
	}
	p.Committing = true
	r.pending[sessionID] = p
	return p, true
}

// Release снимает отметку записи, спин снова ждет завершения
func (r *StateRepo) Release(sessionID string, spinID string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.pending[sessionID]
	if !ok || p.Decision.SpinID != spinID {
		return
	}
	p.Committing = false
	r.pending[sessionID] = p
}

// Finish освобождает сессию, если spinID совпадает с незавершенным
func (r *StateRepo) Finish(sessionID string, spinID string) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.pending[sessionID]
	if !ok || p.Decision.SpinID != spinID {
		return false
	}
	delete(r.pending, sessionID)
	return true
}
