package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/missions/internal/api"
	"github.com/limbo/missions/internal/migrate"
	"github.com/limbo/missions/internal/repository"
	"github.com/limbo/missions/internal/repository/memory"
	"github.com/limbo/missions/internal/service"
	"github.com/limbo/missions/pkg/cleanup"
	"github.com/limbo/missions/pkg/config"
	jwtservice "github.com/limbo/missions/pkg/jwt_service"
	"github.com/limbo/missions/pkg/l10n"
	"github.com/limbo/missions/pkg/logging"
)

type repositories struct {
	users    repository.UsersRepositoryI
	missions repository.MissionsRepositoryI
	groups   repository.MissionGroupsRepositoryI
	records  repository.UserMissionsRepositoryI
}

func main() {
	cfg := config.New()
	logger, err := logging.New(os.Stdout, cfg.GetStringOr("LOG_LEVEL", "info"), cfg.GetStringOr("LOG_FORMAT", "json"))
	if err != nil {
		log.Fatal("setting up logger error: " + err.Error())
	}
	slog.SetDefault(logger)
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		slog.Error("storage setup failed", slog.String("error", err.Error()))
		return
	}
	catalog, err := l10n.Load(cfg.GetStringOr("L10N_FILE", "./configs/strings.ini"), cfg.GetStringOr("DEFAULT_LOCALE", "en"))
	if err != nil {
		slog.Error("l10n setup failed", slog.String("error", err.Error()))
		return
	}

	serv := api.New(&api.ServicesList{
		MissionsService: service.NewMissionsService(repos.missions),
		GroupsService:   service.NewGroupsService(repos.groups),
		ParticipationService: service.NewParticipationService(repos.records,
			cfg.GetBool("RESET_PROGRESS_ON_REJOIN", false), time.Now),
		CheckInService: service.NewCheckInService(repos.records, cfg.GetInt("CHECKIN_PARALLELISM", 4), time.Now),
		MissionListService: service.NewMissionListService(service.MissionListDeps{
			Groups:     repos.groups,
			Missions:   repos.missions,
			Records:    repos.records,
			Localizer:  catalog,
			Suspicious: service.SuspiciousFlag(repos.users),
			Clock:      time.Now,
		}),
		UserResolver:   service.NewUserResolver(jwtservice.New(cfg.GetString("JWT_SECRET")), repos.users),
		RequestTimeout: cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second),
	})
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.GetStringOr("STORAGE_DRIVER", "postgres") == "memory" {
		slog.Warn("using in-memory storage, state is lost on restart")
		store := memory.New()
		return &repositories{users: store, missions: store, groups: store, records: store}, nil
	}
	dbCfg := &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	if err := migrate.Up(ctx, dbCfg.ConnString()); err != nil {
		return nil, err
	}
	pool, err := repository.NewPool(ctx, dbCfg)
	if err != nil {
		return nil, err
	}
	retry := repository.DefaultRetryPolicy
	if n := cfg.GetInt("STORE_MAX_RETRIES", int(retry.MaxRetries)); n >= 0 {
		retry.MaxRetries = uint64(n)
	}
	return &repositories{
		users:    repository.NewUsersRepo(pool),
		missions: repository.NewMissionsRepo(pool),
		groups:   repository.NewMissionGroupsRepo(pool),
		records:  repository.NewUserMissionsRepo(pool, retry),
	}, nil
}
