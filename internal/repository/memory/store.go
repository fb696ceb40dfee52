// Package memory keeps mission state in process memory. It satisfies the
// repository interfaces with the same atomicity guarantees as the postgres
// implementation and is used for local runs and tests.
package memory

import (
	"context"
	"hash/maphash"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/missions/internal/error_values"
	"github.com/limbo/missions/internal/repository"
	"github.com/limbo/missions/pkg/entity"
)

type recordKey struct {
	uid uuid.UUID
	entity.MissionKey
}

// Records hash onto a fixed set of locks, so the lock table does not grow
// with the number of (user, mission) pairs.
const lockStripes = 256

type Store struct {
	catalogMu sync.RWMutex
	missions  map[entity.MissionKey]*entity.Mission
	groups    map[string][]entity.MissionReference
	position  int64

	usersMu sync.RWMutex
	users   map[uuid.UUID]*entity.User

	recordsMu sync.RWMutex
	records   map[recordKey]*entity.UserMission
	// Mutate on one record holds its stripe; unrelated records may share it
	locks    [lockStripes]sync.Mutex
	lockSeed maphash.Seed

	now func() time.Time
}

func New() *Store {
	return &Store{
		missions: make(map[entity.MissionKey]*entity.Mission),
		groups:   make(map[string][]entity.MissionReference),
		users:    make(map[uuid.UUID]*entity.User),
		records:  make(map[recordKey]*entity.UserMission),
		lockSeed: maphash.MakeSeed(),
		now:      time.Now,
	}
}

var (
	_ repository.MissionsRepositoryI      = (*Store)(nil)
	_ repository.MissionGroupsRepositoryI = (*Store)(nil)
	_ repository.UserMissionsRepositoryI  = (*Store)(nil)
	_ repository.UsersRepositoryI         = (*Store)(nil)
)

// PutUser registers or replaces a user. Users are provisioned outside this
// service, so this is the only way to add them.
func (s *Store) PutUser(user entity.User) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	s.users[user.ID] = &user
}

func (s *Store) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	u, ok := s.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) Create(ctx context.Context, mission *entity.Mission) error {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()
	key := mission.Key()
	if _, ok := s.missions[key]; ok {
		return errorvalues.ErrMissionExists
	}
	m := copyMission(mission)
	m.JoinedCount = 0
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}
	s.missions[key] = m
	return nil
}

func (s *Store) GetByKey(ctx context.Context, key entity.MissionKey) (*entity.Mission, error) {
	s.catalogMu.RLock()
	defer s.catalogMu.RUnlock()
	m, ok := s.missions[key]
	if !ok {
		return nil, errorvalues.ErrMissionNotFound
	}
	return copyMission(m), nil
}

// DeleteMission drops a definition but keeps group references pointing at it.
func (s *Store) DeleteMission(key entity.MissionKey) {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()
	delete(s.missions, key)
}

func (s *Store) Assign(ctx context.Context, groupID string, keys []entity.MissionKey) ([]entity.MissionReference, error) {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()
	existing := s.groups[groupID]
	refs := make([]entity.MissionReference, 0, len(keys))
	for _, key := range keys {
		ref, found := findRef(existing, key)
		if !found {
			s.position++
			ref = entity.MissionReference{GroupID: groupID, MissionKey: key, Position: s.position}
			existing = append(existing, ref)
		}
		refs = append(refs, ref)
	}
	s.groups[groupID] = existing
	return refs, nil
}

func (s *Store) ListByGroup(ctx context.Context, groupID string) ([]entity.MissionReference, error) {
	s.catalogMu.RLock()
	defer s.catalogMu.RUnlock()
	refs := make([]entity.MissionReference, len(s.groups[groupID]))
	copy(refs, s.groups[groupID])
	return refs, nil
}

func (s *Store) Get(ctx context.Context, uid uuid.UUID, key entity.MissionKey) (*entity.UserMission, error) {
	s.recordsMu.RLock()
	defer s.recordsMu.RUnlock()
	rec, ok := s.records[recordKey{uid: uid, MissionKey: key}]
	if !ok {
		nj := entity.NotJoined(uid, key)
		return &nj, nil
	}
	cp := rec.Clone()
	return &cp, nil
}

func (s *Store) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.UserMission, error) {
	s.recordsMu.RLock()
	result := make([]*entity.UserMission, 0)
	for k, rec := range s.records {
		if k.uid == uid {
			cp := rec.Clone()
			result = append(result, &cp)
		}
	}
	s.recordsMu.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		if result[i].Type != result[j].Type {
			return result[i].Type < result[j].Type
		}
		return result[i].MID < result[j].MID
	})
	return result, nil
}

func (s *Store) ListInterested(ctx context.Context, uid uuid.UUID, ping string) ([]entity.MissionKey, error) {
	recs, err := s.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	s.catalogMu.RLock()
	defer s.catalogMu.RUnlock()
	keys := make([]entity.MissionKey, 0)
	for _, rec := range recs {
		if rec.Status != entity.StatusJoined {
			continue
		}
		m, ok := s.missions[rec.MissionKey]
		if ok && m.InterestedIn(ping) {
			keys = append(keys, rec.MissionKey)
		}
	}
	return keys, nil
}

func (s *Store) Mutate(ctx context.Context, uid uuid.UUID, key entity.MissionKey, fn repository.MutateFunc) (*entity.UserMission, error) {
	rk := recordKey{uid: uid, MissionKey: key}
	mu := s.lockFor(rk)
	mu.Lock()
	defer mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mission, err := s.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	current, err := s.Get(ctx, uid, key)
	if err != nil {
		return nil, err
	}
	next, err := fn(mission, current.Clone())
	if err != nil {
		return nil, err
	}
	if next.Equal(*current) {
		return current, nil
	}

	if err := s.adjustJoinedCount(key, current.Status, next.Status); err != nil {
		return nil, err
	}
	next.UpdatedAt = s.now()
	stored := next.Clone()
	s.recordsMu.Lock()
	s.records[rk] = &stored
	s.recordsMu.Unlock()
	return &next, nil
}

func (s *Store) lockFor(rk recordKey) *sync.Mutex {
	var h maphash.Hash
	h.SetSeed(s.lockSeed)
	_, _ = h.Write(rk.uid[:])
	_, _ = h.WriteString(string(rk.Type))
	_ = h.WriteByte('/')
	_, _ = h.WriteString(rk.MID)
	return &s.locks[h.Sum64()%lockStripes]
}

func (s *Store) adjustJoinedCount(key entity.MissionKey, from, to entity.JoinStatus) error {
	wasJoined := from == entity.StatusJoined
	isJoined := to == entity.StatusJoined
	if wasJoined == isJoined {
		return nil
	}
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()
	m, ok := s.missions[key]
	if !ok {
		return errorvalues.ErrMissionNotFound
	}
	if isJoined {
		if m.QuotaExhausted() {
			return errorvalues.ErrQuotaExceeded
		}
		m.JoinedCount++
		return nil
	}
	if m.JoinedCount > 0 {
		m.JoinedCount--
	}
	return nil
}

func findRef(refs []entity.MissionReference, key entity.MissionKey) (entity.MissionReference, bool) {
	for _, r := range refs {
		if r.MissionKey == key {
			return r, true
		}
	}
	return entity.MissionReference{}, false
}

func copyMission(m *entity.Mission) *entity.Mission {
	cp := *m
	cp.InterestPings = append([]string(nil), m.InterestPings...)
	if m.ExpiresAt != nil {
		e := *m.ExpiresAt
		cp.ExpiresAt = &e
	}
	if m.JoinQuota != nil {
		q := *m.JoinQuota
		cp.JoinQuota = &q
	}
	return &cp
}
