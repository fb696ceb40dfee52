package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/missions/internal/error_values"
)

type MissionType string

const (
	MissionDaily   MissionType = "mission_daily"
	MissionOneShot MissionType = "mission_one_shot"
)

func ParseMissionType(s string) (MissionType, error) {
	t := MissionType(s)
	if !t.Valid() {
		return "", errorvalues.ErrInvalidMissionType
	}
	return t, nil
}

func (t MissionType) Valid() bool {
	return t == MissionDaily || t == MissionOneShot
}

// MissionKey identifies a mission across collections: mid is unique only within its type.
type MissionKey struct {
	Type MissionType
	MID  string
}

func (k MissionKey) Endpoint() string {
	return "/" + string(k.Type) + "/" + k.MID
}

// ParseEndpoint is the inverse of MissionKey.Endpoint.
func ParseEndpoint(endpoint string) (MissionKey, error) {
	parts := strings.Split(strings.TrimPrefix(endpoint, "/"), "/")
	if len(parts) != 2 || parts[1] == "" {
		return MissionKey{}, errorvalues.ErrInvalidEndpoint
	}
	t, err := ParseMissionType(parts[0])
	if err != nil {
		return MissionKey{}, errorvalues.ErrInvalidEndpoint
	}
	return MissionKey{Type: t, MID: parts[1]}, nil
}

type Schedule struct {
	// Number of distinct check-in days needed to complete a daily mission
	TotalDays int `json:"totalDays,omitempty"`
}

type Mission struct {
	MID           string
	Type          MissionType
	Name          string
	TitleID       string
	DescriptionID string
	InterestPings []string
	ExpiresAt     *time.Time
	JoinQuota     *int
	JoinedCount   int
	Schedule      Schedule
	CreatedAt     time.Time
}

func (m *Mission) Key() MissionKey {
	return MissionKey{Type: m.Type, MID: m.MID}
}

func (m *Mission) Endpoint() string {
	return m.Key().Endpoint()
}

func (m *Mission) Expired(now time.Time) bool {
	return m.ExpiresAt != nil && !now.Before(*m.ExpiresAt)
}

func (m *Mission) QuotaExhausted() bool {
	return m.JoinQuota != nil && m.JoinedCount >= *m.JoinQuota
}

func (m *Mission) InterestedIn(ping string) bool {
	for _, p := range m.InterestPings {
		if p == ping {
			return true
		}
	}
	return false
}

type MissionReference struct {
	GroupID string
	MissionKey
	Position int64
}

type JoinStatus string

const (
	StatusNotJoined JoinStatus = "not_joined"
	StatusJoined    JoinStatus = "join"
	StatusQuit      JoinStatus = "quit"
	StatusCompleted JoinStatus = "complete"
)

type Progress struct {
	DayCount    int
	LastCheckIn *time.Time
	Completed   bool
}

type UserMission struct {
	UserID uuid.UUID
	MissionKey
	Status    JoinStatus
	JoinDate  *time.Time
	Progress  Progress
	UpdatedAt time.Time
}

// NotJoined is the record returned for a (user, mission) pair without stored state.
func NotJoined(uid uuid.UUID, key MissionKey) UserMission {
	return UserMission{
		UserID:     uid,
		MissionKey: key,
		Status:     StatusNotJoined,
	}
}

// Equal compares the mutable state of two records, ignoring UpdatedAt.
func (um UserMission) Equal(other UserMission) bool {
	return um.UserID == other.UserID &&
		um.MissionKey == other.MissionKey &&
		um.Status == other.Status &&
		timePtrEqual(um.JoinDate, other.JoinDate) &&
		um.Progress.DayCount == other.Progress.DayCount &&
		um.Progress.Completed == other.Progress.Completed &&
		timePtrEqual(um.Progress.LastCheckIn, other.Progress.LastCheckIn)
}

// Clone returns a copy that shares no pointers with um.
func (um UserMission) Clone() UserMission {
	c := um
	if um.JoinDate != nil {
		jd := *um.JoinDate
		c.JoinDate = &jd
	}
	if um.Progress.LastCheckIn != nil {
		lc := *um.Progress.LastCheckIn
		c.Progress.LastCheckIn = &lc
	}
	return c
}

// LocalDate truncates t to its calendar date in loc. The result is midnight UTC
// of that date so dates from different zones compare by calendar order.
func LocalDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

type User struct {
	ID         uuid.UUID
	Name       string
	Suspended  bool
	Suspicious bool
}
