package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/missions/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// Clock returns current time. Services take it to make day boundaries testable
type Clock func() time.Time

type MissionDraft struct {
	MID           string   `validate:"omitempty,mission_id,max=64"`
	Type          string   `validate:"required"`
	Endpoint      string   `validate:"omitempty,startswith=/"`
	Name          string   `validate:"max=200"`
	TitleID       string   `validate:"required,max=200"`
	DescriptionID string   `validate:"required,max=200"`
	InterestPings []string `validate:"dive,required,max=100"`
	ExpiresAt     *time.Time
	JoinQuota     *int `validate:"omitempty,min=0"`
	TotalDays     *int
}

// MissionCreateResult reports the outcome of one draft. Err is a
// *ValidationError when the draft was rejected.
type MissionCreateResult struct {
	Endpoint string
	Mission  *entity.Mission
	Err      error
}

type CheckInResult struct {
	entity.MissionKey
	JoinDate  *time.Time
	Status    entity.JoinStatus
	Progress  entity.Progress
	TotalDays int
	Err       error
}

type MissionListItem struct {
	Mission     *entity.Mission
	Title       string
	Description string
	Status      entity.JoinStatus
	Progress    entity.Progress
}

type MissionsServiceI interface {
	// Validates and persists every draft independently. Results follow input order
	CreateMissions(ctx context.Context, drafts []MissionDraft) []MissionCreateResult
	GetMission(ctx context.Context, key entity.MissionKey) (*entity.Mission, error)
}

type GroupsServiceI interface {
	// Adds missions given by endpoints to the group, keeping positions of already assigned ones
	AssignMissions(ctx context.Context, groupID string, endpoints []string) ([]entity.MissionReference, error)
	ListByGroup(ctx context.Context, groupID string) ([]entity.MissionReference, error)
}

type ParticipationServiceI interface {
	JoinMission(ctx context.Context, uid uuid.UUID, key entity.MissionKey) (*entity.UserMission, error)
	// Quitting is idempotent: anything but a joined mission is returned unchanged
	QuitMission(ctx context.Context, uid uuid.UUID, key entity.MissionKey) (*entity.UserMission, error)
}

type CheckInServiceI interface {
	// Advances every joined mission interested in ping at most once per local day of timezone
	CheckIn(ctx context.Context, uid uuid.UUID, ping, timezone string) ([]CheckInResult, error)
}

type MissionListServiceI interface {
	GetGroupMissions(ctx context.Context, uid uuid.UUID, groupID, locale string) ([]MissionListItem, error)
}

type UserResolverI interface {
	// Maps a bearer token to an active user
	ResolveUser(ctx context.Context, token string) (uuid.UUID, error)
}
