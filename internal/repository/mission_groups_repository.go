package repository

import (
	"context"
	"errors"
	"log"

	"github.com/limbo/missions/pkg/entity"
)

type MissionGroupsRepository struct {
	conn PgConnection
}

func NewMissionGroupsRepo(conn PgConnection) *MissionGroupsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for missionGroupsRepo: " + err.Error())
	}
	return &MissionGroupsRepository{
		conn: conn,
	}
}

// Assign inserts every reference in one transaction. The no-op update on
// conflict lets RETURNING report the position of pairs that already existed.
func (gr *MissionGroupsRepository) Assign(ctx context.Context, groupID string, keys []entity.MissionKey) (refs []entity.MissionReference, err error) {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("starting transaction error: " + err.Error())
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = errors.New("committing group assignment error: " + e.Error())
		}
	}()
	refs = make([]entity.MissionReference, 0, len(keys))
	for _, key := range keys {
		ref := entity.MissionReference{GroupID: groupID, MissionKey: key}
		err = tx.QueryRow(ctx, `INSERT INTO mission_groups (group_id, mission_type, mid) VALUES ($1, $2, $3)
			ON CONFLICT (group_id, mission_type, mid) DO UPDATE SET group_id = EXCLUDED.group_id
			RETURNING position;`,
			groupID, string(key.Type), key.MID,
		).Scan(&ref.Position)
		if err != nil {
			return nil, errors.New("assigning mission to group error: " + err.Error())
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (gr *MissionGroupsRepository) ListByGroup(ctx context.Context, groupID string) ([]entity.MissionReference, error) {
	rows, err := gr.conn.Query(ctx, `SELECT mission_type, mid, position FROM mission_groups
		WHERE group_id = $1 ORDER BY position;`, groupID)
	if err != nil {
		return nil, errors.New("listing group references error: " + err.Error())
	}
	defer rows.Close()
	refs := make([]entity.MissionReference, 0)
	for rows.Next() {
		var (
			ref   entity.MissionReference
			mtype string
		)
		ref.GroupID = groupID
		if err = rows.Scan(&mtype, &ref.MID, &ref.Position); err != nil {
			return nil, errors.New("group reference row parsing error: " + err.Error())
		}
		ref.Type = entity.MissionType(mtype)
		refs = append(refs, ref)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected group reference rows error: " + err.Error())
	}
	return refs, nil
}
