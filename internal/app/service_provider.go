package app

import (
	"context"
	participantAPI "fortune_wheel/internal/api/participant"
	wheelAPI "fortune_wheel/internal/api/wheel"
	"fortune_wheel/internal/config"
	"fortune_wheel/internal/config/env"
	"fortune_wheel/internal/middleware"
	"fortune_wheel/internal/repository"
	"fortune_wheel/internal/repository/history_repo"
	"fortune_wheel/internal/repository/kv_repo"
	"fortune_wheel/internal/repository/sheet_repo"
	"fortune_wheel/internal/repository/spin_state_repo"
	"fortune_wheel/internal/service"
	"fortune_wheel/internal/service/participant"
	"fortune_wheel/internal/service/wheel"
	"fortune_wheel/pkg/logger"
	"fortune_wheel/pkg/resp"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	log *zap.Logger

	//TXManager
	txManager service.TxManager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisCfg    config.RedisConfig
	redisClient redis.UniversalClient

	// History bits
	historyCfg  config.HistoryConfig
	kv          repository.KeyValue
	historyRepo repository.HistoryRepository

	// Wheel bits
	wheelCfg  config.WheelConfig
	stateRepo repository.SpinStateRepository
	wheelServ service.WheelService
	wheelHand *wheelAPI.Handler

	// Participant bits
	participantRepo repository.ParticipantRepository
	participantServ service.ParticipantService
	participantHand *participantAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		cfg := env.NewLogConfig()
		l, err := logger.New(logger.Config{
			Level: cfg.Level(),
			Prod:  cfg.Production(),
			File:  cfg.File(),
		})
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) redis.UniversalClient {
	if sp.redisClient == nil {
		cfg := sp.RedisCfg()
		rdb := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{cfg.Address()},
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) HistoryCfg() config.HistoryConfig {
	if sp.historyCfg == nil {
		cfg, err := env.NewHistoryConfig()
		if err != nil {
			panic("failed to get history config: " + err.Error())
		}
		sp.historyCfg = cfg
	}
	return sp.historyCfg
}

// TXManager транзакции нужны только postgres бэкенду, остальным хватает пустышки
func (sp *ServiceProvider) TXManager(ctx context.Context) service.TxManager {
	if sp.txManager == nil {
		if sp.HistoryCfg().Backend() != env.BackendPostgres {
			sp.txManager = service.NopTxManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) KeyValue(ctx context.Context) repository.KeyValue {
	if sp.kv == nil {
		switch sp.HistoryCfg().Backend() {
		case env.BackendRedis:
			sp.kv = kv_repo.NewRedisKeyValue(sp.RedisClient(ctx), 0)
		case env.BackendPostgres:
			sp.kv = kv_repo.NewPostgresKeyValue(sp.DBClient(ctx))
		default:
			sp.kv = kv_repo.NewMemoryKeyValue()
		}
		sp.Logger().Info("history backend", zap.String("backend", sp.HistoryCfg().Backend()))
	}
	return sp.kv
}

func (sp *ServiceProvider) HistoryRepository(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository(sp.KeyValue(ctx), sp.HistoryCfg().KeyPrefix(), sp.Logger())
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(env.WheelConfigPath())
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) SpinStateRepository() repository.SpinStateRepository {
	if sp.stateRepo == nil {
		sp.stateRepo = spin_state_repo.NewSpinStateRepository()
	}
	return sp.stateRepo
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(
			sp.WheelCfg(),
			sp.HistoryRepository(ctx),
			sp.SpinStateRepository(),
			sp.TXManager(ctx),
			wheel.DefaultRandomSource(),
			sp.Logger(),
		)
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv:         sp.WheelService(ctx),
			SpinDuration: sp.WheelCfg().SpinDuration(),
			Log:          sp.Logger(),
		})
	}
	return sp.wheelHand
}

// ParticipantRepository без настроек Sheets колесо продолжает работать,
// а сохранение участника отвечает ошибкой конфигурации
func (sp *ServiceProvider) ParticipantRepository(ctx context.Context) repository.ParticipantRepository {
	if sp.participantRepo == nil {
		cfg, err := env.NewSheetsConfig()
		if err == nil {
			sp.participantRepo, err = sheet_repo.NewSheetRepository(ctx, cfg)
		}
		if err != nil {
			sp.Logger().Warn("participants storage disabled", zap.Error(err))
			sp.participantRepo = sheet_repo.NewUnconfiguredRepository(err)
		}
	}
	return sp.participantRepo
}

func (sp *ServiceProvider) ParticipantService(ctx context.Context) service.ParticipantService {
	if sp.participantServ == nil {
		sp.participantServ = participant.NewParticipantService(sp.ParticipantRepository(ctx), env.SheetsTimeZone(), sp.Logger())
	}
	return sp.participantServ
}

func (sp *ServiceProvider) ParticipantHandler(ctx context.Context) *participantAPI.Handler {
	if sp.participantHand == nil {
		sp.participantHand = participantAPI.NewHandler(participantAPI.HandlerDeps{
			Serv: sp.ParticipantService(ctx),
		})
	}
	return sp.participantHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Logging(sp.Logger()))

		// CORS middleware
		r.Use(cors.Handler(corsOptions(sp.HTTPCfg())))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Handle("/metrics", promhttp.Handler())

		// Wheel endpoints
		wheelHandler := sp.WheelHandler(ctx)
		r.Route("/wheel", func(rr chi.Router) {
			rr.Use(middleware.Session)
			rr.Post("/spin", wheelHandler.Spin)
			rr.Post("/spin/{spinID}/complete", wheelHandler.Complete)
			rr.Get("/history", wheelHandler.History)
			rr.Delete("/history", wheelHandler.ResetHistory)
			rr.Get("/prizes", wheelHandler.Prizes)
		})

		// Participant endpoints
		participantHandler := sp.ParticipantHandler(ctx)
		r.Route("/api", func(rr chi.Router) {
			rr.Post("/save-participant", participantHandler.Save)
			rr.Get("/get-participants", participantHandler.List)
		})

		sp.router = r
	}

	return sp.router
}

// Close закрывает внешние соединения, если они открывались
func (sp *ServiceProvider) Close() {
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			sp.Logger().Warn("close redis", zap.Error(err))
		}
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}

func corsOptions(cfg config.HTTPConfig) cors.Options {
	return cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: cfg.AllowCredentials(),
		MaxAge:           60 * 15,
	}
}
