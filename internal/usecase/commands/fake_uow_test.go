//go:build unit

package commands_test

import (
	"context"
	"strings"
	"time"

	"gateops/internal/domain/client"
	"gateops/internal/domain/request"
	"gateops/internal/domain/visit"
	"gateops/internal/infra"
	"gateops/internal/infra/db"
	"gateops/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW is an in-memory stand-in for the postgres unit of work. It keeps
// snapshot maps and mirrors the conditional-write semantics of the real
// repositories (status guard, bay guard, close-once guard) so command flows
// can be exercised end to end without a database.
type fakeUoW struct {
	requests map[uuid.UUID]shared.RequestSnapshot
	visits   map[uuid.UUID]shared.VisitSnapshot
	clients  map[string]shared.ClientSnapshot
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		requests: make(map[uuid.UUID]shared.RequestSnapshot),
		visits:   make(map[uuid.UUID]shared.VisitSnapshot),
		clients:  make(map[string]shared.ClientSnapshot),
	}
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	requests := copyMap(f.requests)
	visits := copyMap(f.visits)
	clients := copyMap(f.clients)

	if err := fn(ctx, &fakeTx{store: f}); err != nil {
		f.requests = requests
		f.visits = visits
		f.clients = clients
		return err
	}
	return nil
}

func (f *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: f}
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

type fakeTx struct {
	store *fakeUoW
}

func (t *fakeTx) Requests() shared.RequestRepository { return &fakeRequestRepo{store: t.store} }
func (t *fakeTx) Visits() shared.VisitRepository     { return &fakeVisitRepo{store: t.store} }
func (t *fakeTx) Clients() shared.ClientRepository   { return &fakeClientRepo{store: t.store} }
func (t *fakeTx) Users() shared.UserRepository       { return &fakeUserRepo{} }
func (t *fakeTx) Reads() shared.CommandReads         { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeRequestRepo struct {
	store *fakeUoW
}

func (r *fakeRequestRepo) Create(_ context.Context, _ db.DBTX, req *request.Request) (uuid.UUID, error) {
	snap := shared.RequestSnapshot{
		ID:          req.ID(),
		Kind:        req.Kind().String(),
		Subject:     req.Subject(),
		Branch:      req.Branch(),
		Status:      req.Status().String(),
		SubmittedAt: req.SubmittedAt(),
		CreatedAt:   req.SubmittedAt(),
		UpdatedAt:   req.SubmittedAt(),
	}
	if details := req.Appointment(); details != nil {
		purpose, person := details.Purpose, details.PersonToVisit
		snap.Purpose = &purpose
		snap.PersonToVisit = &person
	}
	if details := req.Truck(); details != nil {
		plate, truckType, brand, name := details.PlateNumber, details.TruckType, details.TruckBrand, details.ClientName
		snap.PlateNumber = &plate
		snap.TruckType = &truckType
		snap.TruckBrand = &brand
		snap.ClientName = &name
	}
	r.store.requests[snap.ID] = snap
	return snap.ID, nil
}

func (r *fakeRequestRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, from, to request.Status, decidedAt time.Time) error {
	snap, ok := r.store.requests[id]
	if !ok || snap.Status != from.String() {
		return infra.WrapRepoErr("request status update affected no rows", nil, infra.KindConflict)
	}
	snap.Status = to.String()
	snap.DecidedAt = &decidedAt
	snap.UpdatedAt = decidedAt
	r.store.requests[id] = snap
	return nil
}

type fakeVisitRepo struct {
	store *fakeUoW
}

func (r *fakeVisitRepo) Create(_ context.Context, _ db.DBTX, v *visit.Visit) (uuid.UUID, error) {
	snap := shared.VisitSnapshot{
		ID:        v.ID(),
		Kind:      v.Kind().String(),
		RequestID: v.RequestID(),
		ClientID:  v.ClientID(),
		Subject:   v.Subject(),
		Branch:    v.Branch(),
		TimeIn:    v.TimeIn(),
		CreatedAt: v.TimeIn(),
		UpdatedAt: v.TimeIn(),
	}
	if code := v.Bay(); code != nil {
		value := code.String()
		for _, existing := range r.store.visits {
			if existing.Branch == snap.Branch && existing.TimeOut == nil &&
				existing.Bay != nil && *existing.Bay == value {
				return uuid.Nil, infra.WrapRepoErr("bay guard rejected insert", nil, infra.KindConflict)
			}
		}
		snap.Bay = &value
	}
	r.store.visits[snap.ID] = snap
	return snap.ID, nil
}

func (r *fakeVisitRepo) Close(_ context.Context, _ db.DBTX, id uuid.UUID, timeOut time.Time, durationMinutes int) error {
	snap, ok := r.store.visits[id]
	if !ok || snap.TimeOut != nil {
		return infra.WrapRepoErr("visit close affected no rows", nil, infra.KindConflict)
	}
	snap.TimeOut = &timeOut
	snap.DurationMinutes = &durationMinutes
	snap.UpdatedAt = timeOut
	r.store.visits[id] = snap
	return nil
}

type fakeClientRepo struct {
	store *fakeUoW
}

func (r *fakeClientRepo) Create(_ context.Context, _ db.DBTX, c *client.Client) (uuid.UUID, error) {
	plate := c.PlateNumber().Value()
	if _, exists := r.store.clients[plate]; exists {
		return uuid.Nil, infra.WrapRepoErr("duplicate plate number", nil, infra.KindDuplicateKey)
	}
	r.store.clients[plate] = shared.ClientSnapshot{
		ID:          c.ID(),
		ClientName:  c.ClientName(),
		PlateNumber: plate,
		TruckType:   c.TruckType(),
		TruckBrand:  c.TruckBrand(),
		Branch:      c.Branch(),
	}
	return c.ID(), nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

type fakeReads struct {
	store *fakeUoW
}

func (r *fakeReads) RequestByID(_ context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	snap, ok := r.store.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) VisitByID(_ context.Context, id uuid.UUID) (*shared.VisitSnapshot, error) {
	snap, ok := r.store.visits[id]
	if !ok {
		return nil, infra.WrapRepoErr("visit not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) ClientByPlate(_ context.Context, plateNumber string) (*shared.ClientSnapshot, error) {
	plate := strings.ToUpper(strings.TrimSpace(plateNumber))
	snap, ok := r.store.clients[plate]
	if !ok {
		return nil, infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) OccupiedBays(_ context.Context, branch string) ([]string, error) {
	var codes []string
	for _, snap := range r.store.visits {
		if snap.Branch == branch && snap.TimeOut == nil && snap.Bay != nil {
			codes = append(codes, *snap.Bay)
		}
	}
	return codes, nil
}
