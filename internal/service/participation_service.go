package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/internal/repository"
	"github.com/limbo/missions/pkg/entity"
)

type ParticipationService struct {
	recordsRepo repository.UserMissionsRepositoryI
	// Re-joining a quit mission starts progress from zero
	resetOnRejoin bool
	now           Clock
}

func NewParticipationService(recordsRepo repository.UserMissionsRepositoryI, resetOnRejoin bool, clock Clock) *ParticipationService {
	if recordsRepo == nil {
		log.Fatal("on participation service provided nil repo")
	}
	if clock == nil {
		clock = time.Now
	}
	return &ParticipationService{
		recordsRepo:   recordsRepo,
		resetOnRejoin: resetOnRejoin,
		now:           clock,
	}
}

func (serv *ParticipationService) JoinMission(ctx context.Context, uid uuid.UUID, key entity.MissionKey) (*entity.UserMission, error) {
	if !key.Type.Valid() {
		return nil, errorvalues.ErrInvalidMissionType
	}
	now := serv.now()
	rec, err := serv.recordsRepo.Mutate(ctx, uid, key, func(m *entity.Mission, cur entity.UserMission) (entity.UserMission, error) {
		switch cur.Status {
		case entity.StatusJoined, entity.StatusCompleted:
			return cur, nil
		}
		if m.Expired(now) {
			return cur, errorvalues.ErrMissionExpired
		}
		// fast path only, the store re-checks the quota atomically
		if m.QuotaExhausted() {
			return cur, errorvalues.ErrQuotaExceeded
		}
		next := cur
		if cur.Status == entity.StatusQuit && serv.resetOnRejoin {
			next.Progress = entity.Progress{}
		}
		joinDate := now
		next.Status = entity.StatusJoined
		next.JoinDate = &joinDate
		return next, nil
	})
	if err != nil {
		return nil, mapRecordError(err)
	}
	return rec, nil
}

func (serv *ParticipationService) QuitMission(ctx context.Context, uid uuid.UUID, key entity.MissionKey) (*entity.UserMission, error) {
	if !key.Type.Valid() {
		return nil, errorvalues.ErrInvalidMissionType
	}
	rec, err := serv.recordsRepo.Mutate(ctx, uid, key, func(_ *entity.Mission, cur entity.UserMission) (entity.UserMission, error) {
		if cur.Status != entity.StatusJoined {
			return cur, nil
		}
		next := cur
		next.Status = entity.StatusQuit
		next.JoinDate = nil
		return next, nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrMissionNotFound) {
			return serv.currentState(ctx, uid, key)
		}
		return nil, mapRecordError(err)
	}
	return rec, nil
}

func (serv *ParticipationService) currentState(ctx context.Context, uid uuid.UUID, key entity.MissionKey) (*entity.UserMission, error) {
	rec, err := serv.recordsRepo.Get(ctx, uid, key)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return rec, nil
}

// mapRecordError keeps sentinels the api layer switches on and wraps the rest.
func mapRecordError(err error) error {
	switch {
	case errors.Is(err, errorvalues.ErrMissionNotFound),
		errors.Is(err, errorvalues.ErrMissionExpired),
		errors.Is(err, errorvalues.ErrQuotaExceeded),
		errors.Is(err, errorvalues.ErrConcurrentUpdate),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return err
	}
	return errors.New("repository error: " + err.Error())
}
