package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/internal/repository"
	"github.com/limbo/missions/pkg/entity"
	"github.com/limbo/missions/pkg/logging"
)

type ValidationCode string

const (
	CodeDuplicateID     ValidationCode = "DUPLICATE_ID"
	CodeInvalidSchedule ValidationCode = "INVALID_SCHEDULE"
	CodeInvalidType     ValidationCode = "INVALID_TYPE"
	CodeInvalidEndpoint ValidationCode = "INVALID_ENDPOINT"
	CodeInvalidField    ValidationCode = "INVALID_FIELD"
)

// ValidationError rejects a single mission draft.
type ValidationError struct {
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Message
}

func invalid(code ValidationCode, msg string) *ValidationError {
	return &ValidationError{Code: code, Message: msg}
}

type MissionsService struct {
	missionsRepo repository.MissionsRepositoryI
}

func NewMissionsService(missionsRepo repository.MissionsRepositoryI) *MissionsService {
	if missionsRepo == nil {
		log.Fatal("on missions service provided nil repo")
	}
	InitValidator()
	return &MissionsService{
		missionsRepo: missionsRepo,
	}
}

func (serv *MissionsService) CreateMissions(ctx context.Context, drafts []MissionDraft) []MissionCreateResult {
	results := make([]MissionCreateResult, len(drafts))
	seen := make(map[entity.MissionKey]struct{}, len(drafts))
	for i, d := range drafts {
		mission, verr := buildMission(d)
		if verr != nil {
			results[i] = MissionCreateResult{Endpoint: d.Endpoint, Err: verr}
			continue
		}
		key := mission.Key()
		results[i].Endpoint = key.Endpoint()
		if _, dup := seen[key]; dup {
			results[i].Err = invalid(CodeDuplicateID, "repeated in request")
			continue
		}
		seen[key] = struct{}{}
		err := serv.missionsRepo.Create(ctx, mission)
		if err != nil {
			if errors.Is(err, errorvalues.ErrMissionExists) {
				results[i].Err = invalid(CodeDuplicateID, "already exists")
				continue
			}
			logging.FromContext(ctx).Error("creating mission failed",
				slog.String("endpoint", key.Endpoint()), slog.String("error", err.Error()))
			results[i].Err = errors.New("repository error: " + err.Error())
			continue
		}
		results[i].Mission = mission
	}
	return results
}

func (serv *MissionsService) GetMission(ctx context.Context, key entity.MissionKey) (*entity.Mission, error) {
	if !key.Type.Valid() {
		return nil, errorvalues.ErrInvalidMissionType
	}
	m, err := serv.missionsRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMissionNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return m, nil
}

func buildMission(d MissionDraft) (*entity.Mission, *ValidationError) {
	mtype, err := entity.ParseMissionType(d.Type)
	if err != nil {
		return nil, invalid(CodeInvalidType, "unknown mission type "+d.Type)
	}
	if err := validate.Struct(d); err != nil {
		return nil, invalid(CodeInvalidField, describeValidation(err))
	}
	mid := d.MID
	if d.Endpoint != "" {
		key, err := entity.ParseEndpoint(d.Endpoint)
		if err != nil || key.Type != mtype || (mid != "" && key.MID != mid) ||
			validate.Var(key.MID, "mission_id,max=64") != nil {
			return nil, invalid(CodeInvalidEndpoint, "endpoint must be /"+string(mtype)+"/{mid}")
		}
		mid = key.MID
	}
	if mid == "" {
		mid = uuid.NewString()
	}
	schedule := entity.Schedule{}
	switch mtype {
	case entity.MissionDaily:
		if d.TotalDays == nil || *d.TotalDays < 1 {
			return nil, invalid(CodeInvalidSchedule, "daily mission needs totalDays >= 1")
		}
		schedule.TotalDays = *d.TotalDays
	case entity.MissionOneShot:
		if d.TotalDays != nil {
			return nil, invalid(CodeInvalidSchedule, "one-shot mission takes no totalDays")
		}
	}
	return &entity.Mission{
		MID:           mid,
		Type:          mtype,
		Name:          d.Name,
		TitleID:       d.TitleID,
		DescriptionID: d.DescriptionID,
		InterestPings: append([]string{}, d.InterestPings...),
		ExpiresAt:     d.ExpiresAt,
		JoinQuota:     d.JoinQuota,
		Schedule:      schedule,
	}, nil
}
