package wheel

import (
	"errors"
	"fortune_wheel/internal/config"
	"fortune_wheel/internal/model"
	"fortune_wheel/internal/repository"
	"fortune_wheel/internal/service"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrSpinInProgress - у сессии уже крутится колесо
	ErrSpinInProgress = errors.New("spin already in progress")
	// ErrSpinNotFound - нет незавершенного спина с таким id
	ErrSpinNotFound = errors.New("spin not found")
)

type serv struct {
	cfg         config.WheelConfig
	historyRepo repository.HistoryRepository
	stateRepo   repository.SpinStateRepository
	txManager   service.TxManager
	rnd         RandomSource
	log         *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewWheelService Создать колесо фортуны
func NewWheelService(
	cfg config.WheelConfig,
	historyRepo repository.HistoryRepository,
	stateRepo repository.SpinStateRepository,
	txManager service.TxManager,
	rnd RandomSource,
	log *zap.Logger,
) service.WheelService {
	if rnd == nil {
		rnd = DefaultRandomSource()
	}
	return &serv{
		cfg:         cfg,
		historyRepo: historyRepo,
		stateRepo:   stateRepo,
		txManager:   txManager,
		rnd:         rnd,
		log:         log,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *serv) params() Params {
	return Params{
		Strategy:  s.cfg.Strategy(),
		Prizes:    s.cfg.Prizes(),
		FullTurns: s.cfg.FullTurns(),
	}
}

func (s *serv) Prizes() []model.Prize {
	return s.cfg.Prizes()
}
