package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/pkg/entity"
)

type UserMissionsRepository struct {
	conn  PgConnection
	retry RetryPolicy
}

func NewUserMissionsRepo(conn PgConnection, retry RetryPolicy) *UserMissionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for userMissionsRepo: " + err.Error())
	}
	return &UserMissionsRepository{
		conn:  conn,
		retry: retry,
	}
}

func (ur *UserMissionsRepository) Get(ctx context.Context, uid uuid.UUID, key entity.MissionKey) (*entity.UserMission, error) {
	rec := entity.NotJoined(uid, key)
	row := ur.conn.QueryRow(ctx, `SELECT status, join_date, day_count, last_check_in, completed, updated_at
		FROM user_missions WHERE uid = $1 AND mission_type = $2 AND mid = $3;`,
		uid, string(key.Type), key.MID)
	if err := scanRecordState(row, &rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &rec, nil
		}
		return nil, errors.New("getting user mission error: " + err.Error())
	}
	return &rec, nil
}

func (ur *UserMissionsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.UserMission, error) {
	rows, err := ur.conn.Query(ctx, `SELECT mission_type, mid, status, join_date, day_count, last_check_in, completed, updated_at
		FROM user_missions WHERE uid = $1 ORDER BY mission_type, mid;`, uid)
	if err != nil {
		return nil, errors.New("listing user missions error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.UserMission, 0)
	for rows.Next() {
		var (
			rec    = entity.UserMission{UserID: uid}
			mtype  string
			status string
		)
		err = rows.Scan(&mtype, &rec.MID, &status, &rec.JoinDate, &rec.Progress.DayCount,
			&rec.Progress.LastCheckIn, &rec.Progress.Completed, &rec.UpdatedAt)
		if err != nil {
			return nil, errors.New("user mission row parsing error: " + err.Error())
		}
		rec.Type = entity.MissionType(mtype)
		rec.Status = entity.JoinStatus(status)
		result = append(result, &rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected user mission rows error: " + err.Error())
	}
	return result, nil
}

func (ur *UserMissionsRepository) ListInterested(ctx context.Context, uid uuid.UUID, ping string) ([]entity.MissionKey, error) {
	rows, err := ur.conn.Query(ctx, `SELECT um.mission_type, um.mid FROM user_missions um
		JOIN missions m ON m.mission_type = um.mission_type AND m.mid = um.mid
		WHERE um.uid = $1 AND um.status = $2 AND $3 = ANY(m.interest_pings)
		ORDER BY um.mission_type, um.mid;`, uid, string(entity.StatusJoined), ping)
	if err != nil {
		return nil, errors.New("listing interested missions error: " + err.Error())
	}
	defer rows.Close()
	keys := make([]entity.MissionKey, 0)
	for rows.Next() {
		var (
			key   entity.MissionKey
			mtype string
		)
		if err = rows.Scan(&mtype, &key.MID); err != nil {
			return nil, errors.New("interested mission row parsing error: " + err.Error())
		}
		key.Type = entity.MissionType(mtype)
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected interested mission rows error: " + err.Error())
	}
	return keys, nil
}

func (ur *UserMissionsRepository) Mutate(ctx context.Context, uid uuid.UUID, key entity.MissionKey, fn MutateFunc) (*entity.UserMission, error) {
	var result *entity.UserMission
	err := withRetry(ctx, ur.retry, func() error {
		rec, err := ur.mutateOnce(ctx, uid, key, fn)
		if err != nil {
			return err
		}
		result = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (ur *UserMissionsRepository) mutateOnce(ctx context.Context, uid uuid.UUID, key entity.MissionKey, fn MutateFunc) (res *entity.UserMission, err error) {
	tx, err := ur.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("starting transaction error: " + err.Error())
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			res = nil
			err = contentionOr(e, "committing user mission error: ")
		}
	}()

	mission, err := scanMission(tx.QueryRow(ctx,
		`SELECT `+missionColumns+` FROM missions WHERE mission_type = $1 AND mid = $2;`,
		string(key.Type), key.MID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMissionNotFound
		}
		return nil, contentionOr(err, "reading mission error: ")
	}

	current := entity.NotJoined(uid, key)
	exists := true
	err = scanRecordState(tx.QueryRow(ctx, `SELECT status, join_date, day_count, last_check_in, completed, updated_at
		FROM user_missions WHERE uid = $1 AND mission_type = $2 AND mid = $3 FOR UPDATE;`,
		uid, string(key.Type), key.MID), &current)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, contentionOr(err, "locking user mission error: ")
		}
		exists = false
	}

	next, err := fn(mission, current.Clone())
	if err != nil {
		return nil, err
	}
	if next.Equal(current) {
		return &current, nil
	}

	wasJoined := current.Status == entity.StatusJoined
	isJoined := next.Status == entity.StatusJoined
	switch {
	case isJoined && !wasJoined:
		ct, err := tx.Exec(ctx, `UPDATE missions SET joined_count = joined_count + 1
			WHERE mission_type = $1 AND mid = $2 AND (join_quota IS NULL OR joined_count < join_quota);`,
			string(key.Type), key.MID)
		if err != nil {
			return nil, contentionOr(err, "taking join quota error: ")
		}
		if ct.RowsAffected() == 0 {
			return nil, errorvalues.ErrQuotaExceeded
		}
	case wasJoined && !isJoined:
		_, err := tx.Exec(ctx, `UPDATE missions SET joined_count = GREATEST(joined_count - 1, 0)
			WHERE mission_type = $1 AND mid = $2;`,
			string(key.Type), key.MID)
		if err != nil {
			return nil, contentionOr(err, "releasing join quota error: ")
		}
	}

	if exists {
		_, err = tx.Exec(ctx, `UPDATE user_missions SET status = $4, join_date = $5, day_count = $6,
			last_check_in = $7, completed = $8, updated_at = NOW()
			WHERE uid = $1 AND mission_type = $2 AND mid = $3;`,
			uid, string(key.Type), key.MID,
			string(next.Status), next.JoinDate, next.Progress.DayCount, next.Progress.LastCheckIn, next.Progress.Completed,
		)
	} else {
		_, err = tx.Exec(ctx, `INSERT INTO user_missions (uid, mission_type, mid, status, join_date, day_count,
			last_check_in, completed) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			uid, string(key.Type), key.MID,
			string(next.Status), next.JoinDate, next.Progress.DayCount, next.Progress.LastCheckIn, next.Progress.Completed,
		)
	}
	if err != nil {
		// Another transaction created the record first
		if pgErrCode(err) == codeUniqueViolation {
			return nil, errorvalues.ErrConcurrentUpdate
		}
		return nil, contentionOr(err, "writing user mission error: ")
	}
	return &next, nil
}

func scanRecordState(row pgx.Row, rec *entity.UserMission) error {
	var status string
	err := row.Scan(&status, &rec.JoinDate, &rec.Progress.DayCount, &rec.Progress.LastCheckIn,
		&rec.Progress.Completed, &rec.UpdatedAt)
	if err != nil {
		return err
	}
	rec.Status = entity.JoinStatus(status)
	return nil
}

func contentionOr(err error, msg string) error {
	if isContention(err) {
		return errorvalues.ErrConcurrentUpdate
	}
	return errors.New(msg + err.Error())
}
