package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/missions/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Looks up user by uid. Used by token resolution
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type MissionsRepositoryI interface {
	// Persists a new mission definition. Returns ErrMissionExists if (type, mid) is taken
	Create(ctx context.Context, mission *entity.Mission) error
	// Searches mission by its (type, mid) key
	GetByKey(ctx context.Context, key entity.MissionKey) (*entity.Mission, error)
}

type MissionGroupsRepositoryI interface {
	// Appends references to the group. Already assigned pairs keep their position
	Assign(ctx context.Context, groupID string, keys []entity.MissionKey) ([]entity.MissionReference, error)
	// Lists references of the group in assignment order
	ListByGroup(ctx context.Context, groupID string) ([]entity.MissionReference, error)
}

// MutateFunc computes the next state of a user mission record from the mission
// definition and the current record. Returning the current record unchanged
// makes Mutate a no-op; returning an error aborts without writing.
type MutateFunc func(mission *entity.Mission, current entity.UserMission) (entity.UserMission, error)

type UserMissionsRepositoryI interface {
	// Returns stored record or a NOT_JOINED one
	Get(ctx context.Context, uid uuid.UUID, key entity.MissionKey) (*entity.UserMission, error)
	// Lists all stored records of the user
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.UserMission, error)
	// Lists keys of missions the user has joined that are interested in ping
	ListInterested(ctx context.Context, uid uuid.UUID, ping string) ([]entity.MissionKey, error)
	// Atomic read-modify-write of one record. Concurrent calls for the same
	// (uid, key) are serialized. Joined count of the mission is kept in step
	// with the record and the join quota is enforced in the same transaction.
	Mutate(ctx context.Context, uid uuid.UUID, key entity.MissionKey, fn MutateFunc) (*entity.UserMission, error)
}
