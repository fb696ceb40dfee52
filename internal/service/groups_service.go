package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/internal/repository"
	"github.com/limbo/missions/pkg/entity"
)

type GroupsService struct {
	groupsRepo repository.MissionGroupsRepositoryI
}

func NewGroupsService(groupsRepo repository.MissionGroupsRepositoryI) *GroupsService {
	if groupsRepo == nil {
		log.Fatal("on groups service provided nil repo")
	}
	return &GroupsService{
		groupsRepo: groupsRepo,
	}
}

// AssignMissions parses every endpoint before writing anything. Referenced
// missions do not have to exist.
func (serv *GroupsService) AssignMissions(ctx context.Context, groupID string, endpoints []string) ([]entity.MissionReference, error) {
	if groupID == "" {
		return nil, errorvalues.ErrInvalidGroupID
	}
	keys := make([]entity.MissionKey, 0, len(endpoints))
	seen := make(map[entity.MissionKey]struct{}, len(endpoints))
	for _, e := range endpoints {
		key, err := entity.ParseEndpoint(e)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, e)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return []entity.MissionReference{}, nil
	}
	refs, err := serv.groupsRepo.Assign(ctx, groupID, keys)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return refs, nil
}

func (serv *GroupsService) ListByGroup(ctx context.Context, groupID string) ([]entity.MissionReference, error) {
	if groupID == "" {
		return nil, errorvalues.ErrInvalidGroupID
	}
	refs, err := serv.groupsRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return refs, nil
}
