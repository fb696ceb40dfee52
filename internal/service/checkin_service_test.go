package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/internal/repository/mocks"
	"github.com/limbo/missions/internal/service"
	"github.com/limbo/missions/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTimezone(t *testing.T) {
	t.Parallel()
	for _, tz := range []string{"Asia/Taipei", "UTC", "America/New_York"} {
		loc, err := service.LoadTimezone(tz)
		assert.NoError(t, err, tz)
		assert.Equal(t, tz, loc.String())
	}
	for _, tz := range []string{"", "Local", "Mars/Olympus", "../etc/passwd",
		"+", "+123", "GMT+19", "UTC+08:60", "GMT++5", "08:00", "GMTZ", "+08:00:00"} {
		_, err := service.LoadTimezone(tz)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTimezone, tz)
	}
}

func TestLoadTimezoneOffsets(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Zone   string
		Offset int
	}{
		{Zone: "Z", Offset: 0},
		{Zone: "UT", Offset: 0},
		{Zone: "+08:00", Offset: 8 * 3600},
		{Zone: "GMT+08:00", Offset: 8 * 3600},
		{Zone: "UTC+8", Offset: 8 * 3600},
		{Zone: "-05", Offset: -5 * 3600},
		{Zone: "GMT-0930", Offset: -(9*3600 + 30*60)},
		{Zone: "UT+05:45", Offset: 5*3600 + 45*60},
		{Zone: "+18:00", Offset: 18 * 3600},
	}
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, tc := range testCases {
		t.Run(tc.Zone, func(t *testing.T) {
			loc, err := service.LoadTimezone(tc.Zone)
			require.NoError(t, err)
			_, offset := at.In(loc).Zone()
			assert.Equal(t, tc.Offset, offset)
		})
	}
}

func TestCheckInOffsetTimezone(t *testing.T) {
	t.Parallel()
	// 2024-03-02 00:30 at GMT+08:00, still 2024-03-01 in UTC
	clock := &testClock{now: time.Date(2024, 3, 1, 16, 30, 0, 0, time.UTC)}
	m := daily("offset", 5)
	store := newStore(t, m)
	uid := uuid.New()
	ctx := context.Background()
	_, err := service.NewParticipationService(store, false, clock.Now).JoinMission(ctx, uid, m.Key())
	require.NoError(t, err)

	res, err := service.NewCheckInService(store, 2, clock.Now).CheckIn(ctx, uid, "open_app", "GMT+08:00")
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.NoError(t, res[0].Err)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), *res[0].Progress.LastCheckIn)
}

func TestCheckInInvalidTimezone(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	// no repository call is expected
	recordsRepo := mocks.NewMockUserMissionsRepositoryI(ctrl)
	serv := service.NewCheckInService(recordsRepo, 2, nil)
	_, err := serv.CheckIn(context.Background(), uuid.New(), "open_app", "Nowhere/City")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidTimezone)
}

func TestCheckInLocalDays(t *testing.T) {
	t.Parallel()
	// 2024-03-02 00:30 in Taipei
	clock := &testClock{now: time.Date(2024, 3, 1, 16, 30, 0, 0, time.UTC)}
	store := newStore(t, daily("d", 3))
	participation := service.NewParticipationService(store, false, clock.Now)
	serv := service.NewCheckInService(store, 2, clock.Now)
	ctx := context.Background()
	uid := uuid.New()
	key := entity.MissionKey{Type: entity.MissionDaily, MID: "d"}
	_, err := participation.JoinMission(ctx, uid, key)
	require.NoError(t, err)

	checkIn := func(tz string) service.CheckInResult {
		t.Helper()
		results, err := serv.CheckIn(ctx, uid, "open_app", tz)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.NoError(t, results[0].Err)
		return results[0]
	}

	res := checkIn("Asia/Taipei")
	assert.Equal(t, 1, res.Progress.DayCount)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), *res.Progress.LastCheckIn)
	assert.Equal(t, 3, res.TotalDays)
	assert.Equal(t, "d", res.MID)

	// 23:59 of the same local day
	clock.now = time.Date(2024, 3, 2, 15, 59, 0, 0, time.UTC)
	res = checkIn("Asia/Taipei")
	assert.Equal(t, 1, res.Progress.DayCount)

	// UTC is still on 2024-03-02, not after the last check-in
	clock.now = time.Date(2024, 3, 2, 16, 0, 0, 0, time.UTC)
	res = checkIn("UTC")
	assert.Equal(t, 1, res.Progress.DayCount)

	// midnight in Taipei
	res = checkIn("Asia/Taipei")
	assert.Equal(t, 2, res.Progress.DayCount)
	assert.Equal(t, entity.StatusJoined, res.Status)

	clock.now = clock.now.Add(24 * time.Hour)
	res = checkIn("Asia/Taipei")
	assert.Equal(t, 3, res.Progress.DayCount)
	assert.True(t, res.Progress.Completed)
	assert.Equal(t, entity.StatusCompleted, res.Status)

	// completed missions no longer receive pings
	clock.now = clock.now.Add(24 * time.Hour)
	results, err := serv.CheckIn(ctx, uid, "open_app", "Asia/Taipei")
	require.NoError(t, err)
	assert.Empty(t, results)
	m, _ := store.GetByKey(ctx, key)
	assert.Equal(t, 0, m.JoinedCount)
}

func TestCheckInOneShot(t *testing.T) {
	t.Parallel()
	clock := &testClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := newStore(t, oneShot("s"), daily("other", 2))
	participation := service.NewParticipationService(store, false, clock.Now)
	serv := service.NewCheckInService(store, 2, clock.Now)
	ctx := context.Background()
	uid := uuid.New()
	_, err := participation.JoinMission(ctx, uid, entity.MissionKey{Type: entity.MissionOneShot, MID: "s"})
	require.NoError(t, err)
	_, err = participation.JoinMission(ctx, uid, entity.MissionKey{Type: entity.MissionDaily, MID: "other"})
	require.NoError(t, err)

	results, err := serv.CheckIn(ctx, uid, "share", "Europe/Berlin")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.StatusCompleted, results[0].Status)
	assert.True(t, results[0].Progress.Completed)

	rec, _ := store.Get(ctx, uid, entity.MissionKey{Type: entity.MissionDaily, MID: "other"})
	assert.Equal(t, 0, rec.Progress.DayCount)
}

func TestCheckInNoCandidates(t *testing.T) {
	t.Parallel()
	store := newStore(t, daily("d", 3))
	serv := service.NewCheckInService(store, 2, nil)
	results, err := serv.CheckIn(context.Background(), uuid.New(), "open_app", "UTC")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestConcurrentCheckIns(t *testing.T) {
	t.Parallel()
	clock := &testClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := newStore(t, daily("d", 10), daily("e", 10))
	participation := service.NewParticipationService(store, false, clock.Now)
	serv := service.NewCheckInService(store, 2, clock.Now)
	ctx := context.Background()
	uid := uuid.New()
	for _, mid := range []string{"d", "e"} {
		_, err := participation.JoinMission(ctx, uid, entity.MissionKey{Type: entity.MissionDaily, MID: mid})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := serv.CheckIn(ctx, uid, "open_app", "Asia/Taipei")
			assert.NoError(t, err)
			assert.Len(t, results, 2)
		}()
	}
	wg.Wait()
	for _, mid := range []string{"d", "e"} {
		rec, err := store.Get(ctx, uid, entity.MissionKey{Type: entity.MissionDaily, MID: mid})
		require.NoError(t, err)
		assert.Equal(t, 1, rec.Progress.DayCount, mid)
	}
}

func TestCheckInPerMissionFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	recordsRepo := mocks.NewMockUserMissionsRepositoryI(ctrl)
	serv := service.NewCheckInService(recordsRepo, 2, nil)
	uid := uuid.New()
	ok := entity.MissionKey{Type: entity.MissionDaily, MID: "ok"}
	bad := entity.MissionKey{Type: entity.MissionDaily, MID: "bad"}

	recordsRepo.EXPECT().ListInterested(gomock.Any(), uid, "open_app").Return([]entity.MissionKey{ok, bad}, nil)
	recordsRepo.EXPECT().Mutate(gomock.Any(), uid, ok, gomock.Any()).
		Return(&entity.UserMission{UserID: uid, MissionKey: ok, Status: entity.StatusJoined}, nil)
	recordsRepo.EXPECT().Mutate(gomock.Any(), uid, bad, gomock.Any()).Return(nil, errorvalues.ErrConcurrentUpdate)

	results, err := serv.CheckIn(context.Background(), uid, "open_app", "UTC")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, ok, results[0].MissionKey)
	assert.ErrorIs(t, results[1].Err, errorvalues.ErrConcurrentUpdate)
	assert.Equal(t, bad, results[1].MissionKey)

	recordsRepo.EXPECT().ListInterested(gomock.Any(), uid, "open_app").Return(nil, assert.AnError)
	_, err = serv.CheckIn(context.Background(), uid, "open_app", "UTC")
	assert.Error(t, err)
}
