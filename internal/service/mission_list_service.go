package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/internal/repository"
	"github.com/limbo/missions/pkg/entity"
	"github.com/limbo/missions/pkg/l10n"
	"github.com/limbo/missions/pkg/logging"
)

// SuspicionCheck tells whether missions should be hidden from the user.
type SuspicionCheck func(ctx context.Context, uid uuid.UUID) (bool, error)

// SuspiciousFlag reads the suspicious mark kept on the user row.
func SuspiciousFlag(usersRepo repository.UsersRepositoryI) SuspicionCheck {
	return func(ctx context.Context, uid uuid.UUID) (bool, error) {
		user, err := usersRepo.FindByID(ctx, uid)
		if err != nil {
			return false, err
		}
		return user.Suspicious, nil
	}
}

type MissionListDeps struct {
	Groups     repository.MissionGroupsRepositoryI
	Missions   repository.MissionsRepositoryI
	Records    repository.UserMissionsRepositoryI
	Localizer  l10n.Localizer
	Suspicious SuspicionCheck
	Clock      Clock
}

type MissionListService struct {
	groupsRepo   repository.MissionGroupsRepositoryI
	missionsRepo repository.MissionsRepositoryI
	recordsRepo  repository.UserMissionsRepositoryI
	localizer    l10n.Localizer
	suspicious   SuspicionCheck
	now          Clock
}

func NewMissionListService(deps MissionListDeps) *MissionListService {
	if deps.Groups == nil || deps.Missions == nil || deps.Records == nil || deps.Localizer == nil {
		log.Fatal("on mission list service provided nil dependencies")
	}
	if deps.Suspicious == nil {
		deps.Suspicious = func(context.Context, uuid.UUID) (bool, error) { return false, nil }
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &MissionListService{
		groupsRepo:   deps.Groups,
		missionsRepo: deps.Missions,
		recordsRepo:  deps.Records,
		localizer:    deps.Localizer,
		suspicious:   deps.Suspicious,
		now:          deps.Clock,
	}
}

// GetGroupMissions lists missions offered to the group in assignment order.
// Expired or full missions are hidden unless the user already took part.
func (serv *MissionListService) GetGroupMissions(ctx context.Context, uid uuid.UUID, groupID, locale string) ([]MissionListItem, error) {
	if groupID == "" {
		return nil, errorvalues.ErrInvalidGroupID
	}
	logger := logging.FromContext(ctx)
	suspicious, err := serv.suspicious(ctx, uid)
	if err != nil {
		return nil, errors.New("suspicion check error: " + err.Error())
	}
	if suspicious {
		logger.Info("mission list hidden from suspicious user")
		return []MissionListItem{}, nil
	}
	refs, err := serv.groupsRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	records, err := serv.recordsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	byKey := make(map[entity.MissionKey]*entity.UserMission, len(records))
	for _, rec := range records {
		byKey[rec.MissionKey] = rec
	}

	now := serv.now()
	items := make([]MissionListItem, 0, len(refs))
	for _, ref := range refs {
		m, err := serv.missionsRepo.GetByKey(ctx, ref.MissionKey)
		if err != nil {
			if errors.Is(err, errorvalues.ErrMissionNotFound) {
				logger.Warn("group references missing mission",
					slog.String("group_id", groupID), slog.String("endpoint", ref.Endpoint()))
				continue
			}
			return nil, errors.New("repository error: " + err.Error())
		}
		status := entity.StatusNotJoined
		var progress entity.Progress
		if rec, ok := byKey[ref.MissionKey]; ok {
			status = rec.Status
			progress = rec.Progress
		}
		engaged := status == entity.StatusJoined || status == entity.StatusCompleted
		if !engaged && (m.Expired(now) || m.QuotaExhausted()) {
			continue
		}
		items = append(items, MissionListItem{
			Mission:     m,
			Title:       serv.localizer.Localize(m.TitleID, locale),
			Description: serv.localizer.Localize(m.DescriptionID, locale),
			Status:      status,
			Progress:    progress,
		})
	}
	return items, nil
}
