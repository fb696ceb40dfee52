package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/internal/service"
	"github.com/limbo/missions/pkg/entity"
	"github.com/limbo/missions/pkg/httputil"
)

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) GetGroupMissions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get group missions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	groupID := r.PathValue("groupId")
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	items, err := s.missionListService.GetGroupMissions(ctx, uid, groupID, GetLocaleFromContext(r))
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidGroupID) {
			logger.Error("get group missions error: invalid group id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id")
			return
		}
		logger.Error("get group missions error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing missions")
		return
	}
	views := make([]MissionView, 0, len(items))
	for _, it := range items {
		views = append(views, missionView(it))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, views)
	logger.Info("group missions provided", slog.String("group_id", groupID), slog.Int("count", len(views)))
}

func (s *Server) AssignGroupMissions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AssignMissionsRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("assign group missions error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	endpoints := make([]string, 0, len(req.Missions))
	for _, m := range req.Missions {
		endpoints = append(endpoints, m.Endpoint)
	}
	groupID := r.PathValue("groupId")
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	refs, err := s.groupsService.AssignMissions(ctx, groupID, endpoints)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidEndpoint):
			logger.Error("assign group missions error: invalid endpoint", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, errorvalues.ErrInvalidGroupID):
			logger.Error("assign group missions error: invalid group id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id")
		default:
			logger.Error("assign group missions error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while assigning missions")
		}
		return
	}
	resp := make([]EndpointItem, 0, len(refs))
	for _, ref := range refs {
		resp = append(resp, EndpointItem{Endpoint: ref.Endpoint()})
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("group missions assigned", slog.String("group_id", groupID), slog.Int("count", len(resp)))
}

func (s *Server) CreateMissions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateMissionsRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || len(req.Missions) == 0 {
		logger.Error("create missions error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	drafts := make([]service.MissionDraft, 0, len(req.Missions))
	for _, d := range req.Missions {
		drafts = append(drafts, d.toDraft())
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	results := s.missionsService.CreateMissions(ctx, drafts)

	status := http.StatusOK
	resp := CreateMissionsResponse{Missions: make([]CreateMissionResult, 0, len(results))}
	for _, res := range results {
		item := CreateMissionResult{Endpoint: res.Endpoint, Success: res.Err == nil}
		if res.Err != nil {
			status = http.StatusBadRequest
			var verr *service.ValidationError
			if errors.As(res.Err, &verr) {
				item.Error = &ItemError{Code: string(verr.Code), Message: verr.Message}
			} else {
				item.Error = &ItemError{Code: "INTERNAL", Message: "mission was not saved"}
			}
		}
		resp.Missions = append(resp.Missions, item)
	}
	httputil.WriteJSONResponse(w, status, resp)
	logger.Info("missions batch processed", slog.Int("count", len(results)), slog.Int("status", status))
}

func (s *Server) JoinMission(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("join mission error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	key, err := missionKeyFromPath(r)
	if err != nil {
		logger.Error("join mission error: invalid mission type")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mission type")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	rec, err := s.participationService.JoinMission(ctx, uid, key)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrMissionNotFound):
			logger.Error("join mission error: unexist mission")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "mission doesn't exist")
		case errors.Is(err, errorvalues.ErrMissionExpired):
			logger.Error("join mission error: mission expired")
			httputil.WriteErrorResponse(w, http.StatusGone, "mission expired")
		case errors.Is(err, errorvalues.ErrQuotaExceeded):
			logger.Error("join mission error: quota exceeded")
			httputil.WriteErrorResponse(w, http.StatusConflict, "mission join quota exceeded")
		case errors.Is(err, errorvalues.ErrInvalidMissionType):
			logger.Error("join mission error: invalid mission type")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mission type")
		default:
			logger.Error("join mission error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while joining mission")
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, MissionStatusResponse{MID: rec.MID, Status: string(rec.Status)})
	logger.Info("mission joined", slog.String("endpoint", key.Endpoint()))
}

func (s *Server) QuitMission(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("quit mission error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	key, err := missionKeyFromPath(r)
	if err != nil {
		logger.Error("quit mission error: invalid mission type")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mission type")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	rec, err := s.participationService.QuitMission(ctx, uid, key)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidMissionType) {
			logger.Error("quit mission error: invalid mission type")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mission type")
			return
		}
		logger.Error("quit mission error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while quitting mission")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MissionStatusResponse{MID: rec.MID, Status: string(rec.Status)})
	logger.Info("mission quit", slog.String("endpoint", key.Endpoint()))
}

func (s *Server) CheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ping := r.PathValue("ping")
	tz := r.URL.Query().Get("tz")
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	results, err := s.checkInService.CheckIn(ctx, uid, ping, tz)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidTimezone) {
			logger.Error("check-in error: unsupported timezone", slog.String("tz", tz))
			httputil.WriteJSONResponse(w, http.StatusBadRequest, TimezoneErrorResponse{Error: "unsupported timezone"})
			return
		}
		logger.Error("check-in error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during check-in")
		return
	}
	resp := CheckInResponse{Result: make([]CheckInItem, 0, len(results))}
	for _, res := range results {
		resp.Result = append(resp.Result, checkInItem(res))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("check-in processed", slog.String("ping", ping), slog.Int("missions", len(results)))
}

func missionKeyFromPath(r *http.Request) (entity.MissionKey, error) {
	t, err := entity.ParseMissionType(r.PathValue("missionType"))
	if err != nil {
		return entity.MissionKey{}, err
	}
	return entity.MissionKey{Type: t, MID: r.PathValue("mid")}, nil
}
