package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/missions/internal/service"
)

const defaultRequestTimeout = 10 * time.Second

type Server struct {
	mx                   *chi.Mux
	missionsService      service.MissionsServiceI
	groupsService        service.GroupsServiceI
	participationService service.ParticipationServiceI
	checkInService       service.CheckInServiceI
	missionListService   service.MissionListServiceI
	userResolver         service.UserResolverI
	requestTimeout       time.Duration
}

type ServicesList struct {
	MissionsService      service.MissionsServiceI
	GroupsService        service.GroupsServiceI
	ParticipationService service.ParticipationServiceI
	CheckInService       service.CheckInServiceI
	MissionListService   service.MissionListServiceI
	UserResolver         service.UserResolverI
	// Upper bound for service calls of one request
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	timeout := servicesOptions.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	s := &Server{
		mx:                   chi.NewMux(),
		missionsService:      servicesOptions.MissionsService,
		groupsService:        servicesOptions.GroupsService,
		participationService: servicesOptions.ParticipationService,
		checkInService:       servicesOptions.CheckInService,
		missionListService:   servicesOptions.MissionListService,
		userResolver:         servicesOptions.UserResolver,
		requestTimeout:       timeout,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/healthz", s.Health)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/group/{groupId}/missions", s.GetGroupMissions)
		r.Put("/group/{groupId}/missions", s.AssignGroupMissions)
		r.Post("/missions", s.CreateMissions)
		r.Post("/missions/{missionType}/{mid}", s.JoinMission)
		r.Delete("/missions/{missionType}/{mid}", s.QuitMission)
		r.Put("/ping/{ping}", s.CheckIn)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
