package participant

import (
	"fortune_wheel/internal/repository"
	"fortune_wheel/internal/service"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Формат даты как в таблице: 14/10/2026, 15:04:05
const createdAtLayout = "02/01/2006, 15:04:05"

type serv struct {
	repo     repository.ParticipantRepository
	validate *validator.Validate
	loc      *time.Location
	log      *zap.Logger
	now      func() time.Time
}

// NewParticipantService - сохранение и выдача участников.
// timeZone - зона, в которой ставится дата записи; при ошибке используется UTC
func NewParticipantService(repo repository.ParticipantRepository, timeZone string, log *zap.Logger) service.ParticipantService {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		log.Warn("unknown time zone, using UTC", zap.String("time_zone", timeZone), zap.Error(err))
		loc = time.UTC
	}

	return &serv{
		repo:     repo,
		validate: newValidator(),
		loc:      loc,
		log:      log,
		now:      time.Now,
	}
}
