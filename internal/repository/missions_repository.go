package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/pkg/entity"
)

type MissionsRepository struct {
	conn PgConnection
}

func NewMissionsRepo(conn PgConnection) *MissionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for missionsRepo: " + err.Error())
	}
	return &MissionsRepository{
		conn: conn,
	}
}

const missionColumns = `mid, mission_type, mission_name, title_id, description_id, interest_pings,
	expired_at, join_quota, joined_count, total_days, created_at`

func (mr *MissionsRepository) Create(ctx context.Context, m *entity.Mission) error {
	_, err := mr.conn.Exec(ctx, `INSERT INTO missions (mid, mission_type, mission_name, title_id, description_id,
		interest_pings, expired_at, join_quota, total_days) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.MID,
		string(m.Type),
		m.Name,
		m.TitleID,
		m.DescriptionID,
		m.InterestPings,
		m.ExpiresAt,
		m.JoinQuota,
		m.Schedule.TotalDays,
	)
	if err != nil {
		switch pgErrCode(err) {
		case codeUniqueViolation:
			return errorvalues.ErrMissionExists
		}
		return errors.New("creating mission db error: " + err.Error())
	}
	return nil
}

func (mr *MissionsRepository) GetByKey(ctx context.Context, key entity.MissionKey) (*entity.Mission, error) {
	row := mr.conn.QueryRow(ctx, `SELECT `+missionColumns+` FROM missions WHERE mission_type = $1 AND mid = $2;`,
		string(key.Type), key.MID)
	m, err := scanMission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMissionNotFound
		}
		return nil, errors.New("getting mission by key error: " + err.Error())
	}
	return m, nil
}

func scanMission(row pgx.Row) (*entity.Mission, error) {
	var (
		m     entity.Mission
		mtype string
	)
	err := row.Scan(&m.MID, &mtype, &m.Name, &m.TitleID, &m.DescriptionID, &m.InterestPings,
		&m.ExpiresAt, &m.JoinQuota, &m.JoinedCount, &m.Schedule.TotalDays, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Type = entity.MissionType(mtype)
	return &m, nil
}
