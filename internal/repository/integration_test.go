package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/internal/repository"
	"github.com/limbo/missions/internal/service"
	"github.com/limbo/missions/migrations"
	"github.com/limbo/missions/pkg/entity"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var integrationUserID = uuid.New()

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestMissionsIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	cfg := setupMissionsTestDB(t)
	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	users := repository.NewUsersRepo(pool)
	missions := repository.NewMissionsRepo(pool)
	groups := repository.NewMissionGroupsRepo(pool)
	records := repository.NewUserMissionsRepo(pool, repository.DefaultRetryPolicy)

	quota := 1
	daily := dailyMission()
	oneShot := &entity.Mission{
		MID:           "limited",
		Type:          entity.MissionOneShot,
		TitleID:       "one_title",
		DescriptionID: "one_desc",
		InterestPings: []string{"open_app", "daily"},
		JoinQuota:     &quota,
	}

	t.Run("users", func(t *testing.T) {
		u, err := users.FindByID(ctx, integrationUserID)
		require.NoError(t, err)
		assert.Equal(t, "test_name", u.Name)
		_, err = users.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("catalog", func(t *testing.T) {
		require.NoError(t, missions.Create(ctx, daily))
		require.NoError(t, missions.Create(ctx, oneShot))
		assert.ErrorIs(t, missions.Create(ctx, daily), errorvalues.ErrMissionExists)

		got, err := missions.GetByKey(ctx, daily.Key())
		require.NoError(t, err)
		assert.Equal(t, daily.InterestPings, got.InterestPings)
		assert.Equal(t, 5, got.Schedule.TotalDays)
		assert.Nil(t, got.JoinQuota)

		got, err = missions.GetByKey(ctx, oneShot.Key())
		require.NoError(t, err)
		require.NotNil(t, got.JoinQuota)
		assert.Equal(t, 1, *got.JoinQuota)

		_, err = missions.GetByKey(ctx, entity.MissionKey{Type: entity.MissionOneShot, MID: daily.MID})
		assert.ErrorIs(t, err, errorvalues.ErrMissionNotFound)
	})
	t.Run("groups keep first assignment order", func(t *testing.T) {
		dangling := entity.MissionKey{Type: entity.MissionDaily, MID: "gone"}
		_, err := groups.Assign(ctx, "g1", []entity.MissionKey{oneShot.Key(), dangling})
		require.NoError(t, err)
		_, err = groups.Assign(ctx, "g1", []entity.MissionKey{daily.Key(), oneShot.Key()})
		require.NoError(t, err)
		refs, err := groups.ListByGroup(ctx, "g1")
		require.NoError(t, err)
		require.Len(t, refs, 3)
		assert.Equal(t, oneShot.Key(), refs[0].MissionKey)
		assert.Equal(t, dangling, refs[1].MissionKey)
		assert.Equal(t, daily.Key(), refs[2].MissionKey)
	})
	t.Run("concurrent first join of one record", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := records.Mutate(ctx, integrationUserID, daily.Key(), joinFn(time.Now()))
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}
		got, err := missions.GetByKey(ctx, daily.Key())
		require.NoError(t, err)
		assert.Equal(t, 1, got.JoinedCount)
	})
	t.Run("quota admits one of many users", func(t *testing.T) {
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			ok       int
			rejected int
		)
		for range 6 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := records.Mutate(ctx, uuid.New(), oneShot.Key(), joinFn(time.Now()))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					ok++
				case errors.Is(err, errorvalues.ErrQuotaExceeded):
					rejected++
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, ok)
		assert.Equal(t, 5, rejected)
	})
	t.Run("check-in date round trip", func(t *testing.T) {
		today := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		rec, err := records.Mutate(ctx, integrationUserID, daily.Key(),
			func(_ *entity.Mission, cur entity.UserMission) (entity.UserMission, error) {
				cur.Progress.DayCount++
				cur.Progress.LastCheckIn = &today
				return cur, nil
			})
		require.NoError(t, err)
		assert.Equal(t, 1, rec.Progress.DayCount)

		stored, err := records.Get(ctx, integrationUserID, daily.Key())
		require.NoError(t, err)
		require.NotNil(t, stored.Progress.LastCheckIn)
		assert.True(t, today.Equal(*stored.Progress.LastCheckIn))

		keys, err := records.ListInterested(ctx, integrationUserID, "daily")
		require.NoError(t, err)
		assert.Equal(t, []entity.MissionKey{daily.Key()}, keys)
	})
	t.Run("quit releases slot", func(t *testing.T) {
		_, err := records.Mutate(ctx, integrationUserID, daily.Key(), quitFn)
		require.NoError(t, err)
		got, err := missions.GetByKey(ctx, daily.Key())
		require.NoError(t, err)
		assert.Equal(t, 0, got.JoinedCount)

		list, err := records.ListByUser(ctx, integrationUserID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, entity.StatusQuit, list[0].Status)
		assert.Nil(t, list[0].JoinDate)
		assert.Equal(t, 1, list[0].Progress.DayCount)
	})
	t.Run("concurrent check-ins advance once per local day", func(t *testing.T) {
		uid := uuid.New()
		_, err := records.Mutate(ctx, uid, daily.Key(), joinFn(time.Now()))
		require.NoError(t, err)
		// 2024-03-02 00:30 in Taipei
		now := time.Date(2024, 3, 1, 16, 30, 0, 0, time.UTC)
		checkIns := service.NewCheckInService(records, 4, func() time.Time { return now })

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := checkIns.CheckIn(ctx, uid, "daily", "Asia/Taipei")
				assert.NoError(t, err)
				for _, r := range res {
					assert.NoError(t, r.Err)
				}
			}()
		}
		wg.Wait()
		rec, err := records.Get(ctx, uid, daily.Key())
		require.NoError(t, err)
		assert.Equal(t, 1, rec.Progress.DayCount)
		require.NotNil(t, rec.Progress.LastCheckIn)
		assert.True(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC).Equal(*rec.Progress.LastCheckIn))

		// same day expressed as an offset zone
		_, err = checkIns.CheckIn(ctx, uid, "daily", "GMT+08:00")
		require.NoError(t, err)
		rec, err = records.Get(ctx, uid, daily.Key())
		require.NoError(t, err)
		assert.Equal(t, 1, rec.Progress.DayCount)
	})
}

func setupMissionsTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("missions"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	goose.SetBaseFS(migrations.FS)
	if err = goose.SetDialect("postgres"); err != nil {
		t.Fatal(err)
	}
	if err = goose.Up(conn, "."); err != nil {
		t.Fatal(err)
	}
	_, err = conn.Exec(`INSERT INTO users (id, name) VALUES ($1, $2);`, integrationUserID, "test_name")
	if err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
