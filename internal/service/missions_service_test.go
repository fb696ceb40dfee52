package service_test

import (
	"context"
	"errors"
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

func intPtr(v int) *int {
	return &v
}

func dailyDraft(mid string) service.MissionDraft {
	return service.MissionDraft{
		MID:           mid,
		Type:          "mission_daily",
		Name:          "five days",
		TitleID:       "daily_title",
		DescriptionID: "daily_desc",
		InterestPings: []string{"open_app"},
		TotalDays:     intPtr(5),
	}
}

func codeOf(t *testing.T, err error) service.ValidationCode {
	t.Helper()
	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	return verr.Code
}

func TestCreateMissions(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	missionsRepo := mocks.NewMockMissionsRepositoryI(ctrl)
	serv := service.NewMissionsService(missionsRepo)
	ctx := context.Background()

	t.Run("duplicate in batch", func(t *testing.T) {
		missionsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		results := serv.CreateMissions(ctx, []service.MissionDraft{dailyDraft("m1"), dailyDraft("m1")})
		require.Len(t, results, 2)
		assert.NoError(t, results[0].Err)
		assert.Equal(t, "/mission_daily/m1", results[0].Endpoint)
		assert.Equal(t, "m1", results[0].Mission.MID)
		assert.Equal(t, service.CodeDuplicateID, codeOf(t, results[1].Err))
	})
	t.Run("duplicate in store", func(t *testing.T) {
		missionsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrMissionExists)
		results := serv.CreateMissions(ctx, []service.MissionDraft{dailyDraft("m1")})
		assert.Equal(t, service.CodeDuplicateID, codeOf(t, results[0].Err))
	})
	t.Run("same mid in other type is not a duplicate", func(t *testing.T) {
		missionsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		oneShot := dailyDraft("m1")
		oneShot.Type = "mission_one_shot"
		oneShot.TotalDays = nil
		results := serv.CreateMissions(ctx, []service.MissionDraft{dailyDraft("m1"), oneShot})
		assert.NoError(t, results[0].Err)
		assert.NoError(t, results[1].Err)
	})
	t.Run("generated mid", func(t *testing.T) {
		var created *entity.Mission
		missionsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *entity.Mission) error {
				created = m
				return nil
			})
		results := serv.CreateMissions(ctx, []service.MissionDraft{dailyDraft("")})
		require.NoError(t, results[0].Err)
		_, err := uuid.Parse(created.MID)
		assert.NoError(t, err)
		assert.Equal(t, created.Endpoint(), results[0].Endpoint)
	})
	t.Run("mid from endpoint", func(t *testing.T) {
		missionsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		d := dailyDraft("")
		d.Endpoint = "/mission_daily/from_endpoint"
		results := serv.CreateMissions(ctx, []service.MissionDraft{d})
		require.NoError(t, results[0].Err)
		assert.Equal(t, "from_endpoint", results[0].Mission.MID)
	})
	t.Run("repository failure is not a validation error", func(t *testing.T) {
		missionsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		results := serv.CreateMissions(ctx, []service.MissionDraft{dailyDraft("m9")})
		require.Error(t, results[0].Err)
		var verr *service.ValidationError
		assert.False(t, errors.As(results[0].Err, &verr))
	})
}

func TestCreateMissionsRejectsDrafts(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	// nothing reaches the repository
	missionsRepo := mocks.NewMockMissionsRepositoryI(ctrl)
	serv := service.NewMissionsService(missionsRepo)

	withType := func(tp string) service.MissionDraft {
		d := dailyDraft("x")
		d.Type = tp
		return d
	}
	testCases := []struct {
		Desc  string
		Draft func() service.MissionDraft
		Code  service.ValidationCode
	}{
		{Desc: "unknown type", Draft: func() service.MissionDraft { return withType("mission_weekly") }, Code: service.CodeInvalidType},
		{Desc: "daily without total days", Draft: func() service.MissionDraft {
			d := dailyDraft("x")
			d.TotalDays = nil
			return d
		}, Code: service.CodeInvalidSchedule},
		{Desc: "daily with zero days", Draft: func() service.MissionDraft {
			d := dailyDraft("x")
			d.TotalDays = intPtr(0)
			return d
		}, Code: service.CodeInvalidSchedule},
		{Desc: "one-shot with schedule", Draft: func() service.MissionDraft { return withType("mission_one_shot") }, Code: service.CodeInvalidSchedule},
		{Desc: "endpoint of other type", Draft: func() service.MissionDraft {
			d := dailyDraft("x")
			d.Endpoint = "/mission_one_shot/x"
			return d
		}, Code: service.CodeInvalidEndpoint},
		{Desc: "endpoint with other mid", Draft: func() service.MissionDraft {
			d := dailyDraft("x")
			d.Endpoint = "/mission_daily/y"
			return d
		}, Code: service.CodeInvalidEndpoint},
		{Desc: "malformed endpoint", Draft: func() service.MissionDraft {
			d := dailyDraft("")
			d.Endpoint = "/mission_daily/a/b"
			return d
		}, Code: service.CodeInvalidEndpoint},
		{Desc: "missing title", Draft: func() service.MissionDraft {
			d := dailyDraft("x")
			d.TitleID = ""
			return d
		}, Code: service.CodeInvalidField},
		{Desc: "slash in mid", Draft: func() service.MissionDraft { return dailyDraft("a/b") }, Code: service.CodeInvalidField},
		{Desc: "negative quota", Draft: func() service.MissionDraft {
			d := dailyDraft("x")
			d.JoinQuota = intPtr(-1)
			return d
		}, Code: service.CodeInvalidField},
		{Desc: "empty ping", Draft: func() service.MissionDraft {
			d := dailyDraft("x")
			d.InterestPings = []string{""}
			return d
		}, Code: service.CodeInvalidField},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			results := serv.CreateMissions(ctx, []service.MissionDraft{tc.Draft()})
			require.Len(t, results, 1)
			assert.Equal(t, tc.Code, codeOf(t, results[0].Err))
			assert.Nil(t, results[0].Mission)
		})
	}
}

func TestGetMission(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	missionsRepo := mocks.NewMockMissionsRepositoryI(ctrl)
	serv := service.NewMissionsService(missionsRepo)
	key := entity.MissionKey{Type: entity.MissionOneShot, MID: "m"}
	expires := time.Now().Add(time.Hour)
	testCases := []struct {
		Desc         string
		Key          entity.MissionKey
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			Key:  key,
			MockPrepFunc: func() {
				missionsRepo.EXPECT().GetByKey(gomock.Any(), key).
					Return(&entity.Mission{MID: "m", Type: entity.MissionOneShot, ExpiresAt: &expires}, nil)
			},
		},
		{
			Desc:  "not found",
			Key:   key,
			Error: errorvalues.ErrMissionNotFound,
			MockPrepFunc: func() {
				missionsRepo.EXPECT().GetByKey(gomock.Any(), key).Return(nil, errorvalues.ErrMissionNotFound)
			},
		},
		{
			Desc:         "bad type",
			Key:          entity.MissionKey{Type: "mission_weekly", MID: "m"},
			Error:        errorvalues.ErrInvalidMissionType,
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			m, err := serv.GetMission(ctx, tc.Key)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, key, m.Key())
			}
		})
	}
}
