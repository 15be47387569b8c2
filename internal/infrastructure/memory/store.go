// Package memory implementa los puertos de repositorio en memoria para desarrollo y tests.
// Devuelve copias para que el llamador no mute el estado interno.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

var (
	_ repository.PartRepository         = (*PartStore)(nil)
	_ repository.StationRepository      = (*StationStore)(nil)
	_ repository.ProcessEventRepository = (*EventStore)(nil)
	_ repository.UserRepository         = (*UserStore)(nil)
)

// ─── Parts ──────────────────────────────────────────────────────────────────

// PartStore piezas en memoria.
type PartStore struct {
	mu    sync.RWMutex
	parts map[string]*entity.Part
}

// NewPartStore crea un store vacío.
func NewPartStore() *PartStore {
	return &PartStore{parts: make(map[string]*entity.Part)}
}

func (s *PartStore) Create(_ context.Context, p *entity.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.parts {
		if existing.Serial == p.Serial {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	s.parts[p.ID] = &cp
	return nil
}

func (s *PartStore) GetByID(_ context.Context, id string) (*entity.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.parts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *PartStore) GetBySerial(_ context.Context, serial string) (*entity.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.parts {
		if p.Serial == serial {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *PartStore) List(_ context.Context, f repository.PartFilter) ([]*entity.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []*entity.Part
	for _, p := range s.parts {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.Lot != "" && p.Lot != f.Lot {
			continue
		}
		if f.CreatedFrom != nil && p.CreatedAt.Before(*f.CreatedFrom) {
			continue
		}
		if f.CreatedTo != nil && p.CreatedAt.After(*f.CreatedTo) {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].Serial < list[j].Serial
	})
	return paginate(list, f.Limit, f.Offset), nil
}

func (s *PartStore) Update(_ context.Context, p *entity.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parts[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range s.parts {
		if id != p.ID && existing.Serial == p.Serial {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	s.parts[p.ID] = &cp
	return nil
}

func (s *PartStore) UpdateStatus(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

func (s *PartStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.parts, id)
	return nil
}

// ─── Stations ───────────────────────────────────────────────────────────────

// StationStore estaciones en memoria.
type StationStore struct {
	mu       sync.RWMutex
	stations map[string]*entity.Station
}

// NewStationStore crea un store vacío.
func NewStationStore() *StationStore {
	return &StationStore{stations: make(map[string]*entity.Station)}
}

func (s *StationStore) Create(_ context.Context, st *entity.Station) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.stations {
		if existing.Name == st.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *st
	s.stations[st.ID] = &cp
	return nil
}

func (s *StationStore) GetByID(_ context.Context, id string) (*entity.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stations[id]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (s *StationStore) GetByName(_ context.Context, name string) (*entity.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.stations {
		if st.Name == name {
			cp := *st
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *StationStore) List(_ context.Context) ([]*entity.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Station, 0, len(s.stations))
	for _, st := range s.stations {
		cp := *st
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *StationStore) Update(_ context.Context, st *entity.Station) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stations[st.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range s.stations {
		if id != st.ID && existing.Name == st.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *st
	s.stations[st.ID] = &cp
	return nil
}

func (s *StationStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stations, id)
	return nil
}

// ─── Process events ─────────────────────────────────────────────────────────

// EventStore Event Store en memoria.
type EventStore struct {
	mu     sync.RWMutex
	events map[string]*entity.ProcessEvent
}

// NewEventStore crea un store vacío.
func NewEventStore() *EventStore {
	return &EventStore{events: make(map[string]*entity.ProcessEvent)}
}

func (s *EventStore) Create(_ context.Context, ev *entity.ProcessEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[ev.ID]; ok {
		return domain.ErrDuplicate
	}
	s.events[ev.ID] = copyEvent(ev)
	return nil
}

func (s *EventStore) GetByID(_ context.Context, id string) (*entity.ProcessEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ev, ok := s.events[id]
	if !ok {
		return nil, nil
	}
	return copyEvent(ev), nil
}

// GetForUpdate equivale a GetByID; TxRunner serializa las transacciones.
func (s *EventStore) GetForUpdate(ctx context.Context, id string) (*entity.ProcessEvent, error) {
	return s.GetByID(ctx, id)
}

func (s *EventStore) Close(_ context.Context, ev *entity.ProcessEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.events[ev.ID]
	if !ok || current.ExitTime != nil {
		return domain.ErrConflict
	}
	s.events[ev.ID] = copyEvent(ev)
	return nil
}

func (s *EventStore) ListByPart(_ context.Context, partID string) ([]entity.ProcessEvent, error) {
	return s.list(func(ev *entity.ProcessEvent) bool { return ev.PartID == partID }), nil
}

func (s *EventStore) ListAll(_ context.Context) ([]entity.ProcessEvent, error) {
	return s.list(func(*entity.ProcessEvent) bool { return true }), nil
}

func (s *EventStore) list(keep func(*entity.ProcessEvent) bool) []entity.ProcessEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.ProcessEvent, 0)
	for _, ev := range s.events {
		if keep(ev) {
			out = append(out, *copyEvent(ev))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EntryTime.Equal(out[j].EntryTime) {
			return out[i].EntryTime.Before(out[j].EntryTime)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func copyEvent(ev *entity.ProcessEvent) *entity.ProcessEvent {
	cp := *ev
	if ev.ExitTime != nil {
		exit := *ev.ExitTime
		cp.ExitTime = &exit
	}
	return &cp
}

// ─── Users ──────────────────────────────────────────────────────────────────

// UserStore usuarios en memoria.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

// NewUserStore crea un store vacío.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*entity.User)}
}

func (s *UserStore) Create(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *UserStore) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return paginate(list, limit, offset), nil
}

func (s *UserStore) Update(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for id, existing := range s.users {
		if id != u.ID && strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *UserStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(list) {
			return nil
		}
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
