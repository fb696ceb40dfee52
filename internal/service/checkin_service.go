package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/internal/repository"
	"github.com/limbo/missions/pkg/entity"
	"github.com/limbo/missions/pkg/logging"
	"golang.org/x/sync/errgroup"
)

const defaultCheckInParallelism = 4

type CheckInService struct {
	recordsRepo repository.UserMissionsRepositoryI
	parallelism int
	now         Clock
}

func NewCheckInService(recordsRepo repository.UserMissionsRepositoryI, parallelism int, clock Clock) *CheckInService {
	if recordsRepo == nil {
		log.Fatal("on check-in service provided nil repo")
	}
	if parallelism < 1 {
		parallelism = defaultCheckInParallelism
	}
	if clock == nil {
		clock = time.Now
	}
	return &CheckInService{
		recordsRepo: recordsRepo,
		parallelism: parallelism,
		now:         clock,
	}
}

// LoadTimezone accepts IANA zone names and fixed offsets such as "Z",
// "+08:00", "GMT+08:00" or "UTC+8". The process-local zone is rejected
// since it says nothing about the caller.
func LoadTimezone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, errorvalues.ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc, nil
	}
	if loc, ok := parseOffsetZone(name); ok {
		return loc, nil
	}
	return nil, errorvalues.ErrInvalidTimezone
}

const maxZoneOffset = 18 * 60 * 60

// parseOffsetZone reads an optional GMT/UTC/UT prefix followed by
// ±h, ±hh, ±hhmm or ±hh:mm.
func parseOffsetZone(name string) (*time.Location, bool) {
	if name == "Z" {
		return time.UTC, true
	}
	offset := name
	for _, prefix := range []string{"GMT", "UTC", "UT"} {
		if strings.HasPrefix(offset, prefix) {
			offset = offset[len(prefix):]
			if offset == "" {
				return time.FixedZone(name, 0), true
			}
			break
		}
	}
	if len(offset) < 2 || (offset[0] != '+' && offset[0] != '-') {
		return nil, false
	}
	digits := offset[1:]
	var hh, mm string
	switch {
	case len(digits) <= 2:
		hh = digits
	case len(digits) == 4:
		hh, mm = digits[:2], digits[2:]
	case len(digits) == 5 && digits[2] == ':':
		hh, mm = digits[:2], digits[3:]
	default:
		return nil, false
	}
	if strings.TrimLeft(hh+mm, "0123456789") != "" {
		return nil, false
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return nil, false
	}
	minutes := 0
	if mm != "" {
		minutes, err = strconv.Atoi(mm)
		if err != nil || minutes > 59 {
			return nil, false
		}
	}
	seconds := hours*60*60 + minutes*60
	if seconds > maxZoneOffset {
		return nil, false
	}
	if offset[0] == '-' {
		seconds = -seconds
	}
	return time.FixedZone(name, seconds), true
}

func (serv *CheckInService) CheckIn(ctx context.Context, uid uuid.UUID, ping, timezone string) ([]CheckInResult, error) {
	loc, err := LoadTimezone(timezone)
	if err != nil {
		return nil, err
	}
	today := entity.LocalDate(serv.now(), loc)
	keys, err := serv.recordsRepo.ListInterested(ctx, uid, ping)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	results := make([]CheckInResult, len(keys))
	var g errgroup.Group
	g.SetLimit(serv.parallelism)
	for i, key := range keys {
		g.Go(func() error {
			results[i] = serv.checkInOne(ctx, uid, key, today)
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}

func (serv *CheckInService) checkInOne(ctx context.Context, uid uuid.UUID, key entity.MissionKey, today time.Time) CheckInResult {
	res := CheckInResult{MissionKey: key}
	rec, err := serv.recordsRepo.Mutate(ctx, uid, key, func(m *entity.Mission, cur entity.UserMission) (entity.UserMission, error) {
		res.TotalDays = m.Schedule.TotalDays
		return advance(m, cur, today), nil
	})
	if err != nil {
		logging.FromContext(ctx).Warn("check-in failed",
			slog.String("endpoint", key.Endpoint()), slog.String("error", err.Error()))
		res.Err = mapRecordError(err)
		return res
	}
	res.JoinDate = rec.JoinDate
	res.Status = rec.Status
	res.Progress = rec.Progress
	return res
}

// advance applies one check-in for the local date today. A record that is
// not joined or was already checked in on or after today stays as is.
func advance(m *entity.Mission, cur entity.UserMission, today time.Time) entity.UserMission {
	if cur.Status != entity.StatusJoined {
		return cur
	}
	if last := cur.Progress.LastCheckIn; last != nil && !last.Before(today) {
		return cur
	}
	next := cur
	day := today
	next.Progress.LastCheckIn = &day
	switch m.Type {
	case entity.MissionDaily:
		next.Progress.DayCount++
		if next.Progress.DayCount >= m.Schedule.TotalDays {
			next.Progress.Completed = true
		}
	case entity.MissionOneShot:
		next.Progress.Completed = true
	}
	if next.Progress.Completed {
		next.Status = entity.StatusCompleted
	}
	return next
}
