package service_test

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
	"github.com/omicronventa13-glitch/omicron-backend/internal/repository"
	"github.com/omicronventa13-glitch/omicron-backend/internal/service"
)

// ── User repository stub ─────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[primitive.ObjectID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicateKey
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Username == u.Username {
			return repository.ErrDuplicateKey
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) SetOnline(_ context.Context, id primitive.ObjectID, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.IsOnline = true
	u.LastLogin = &at
	return nil
}

func (r *stubUserRepo) SetOffline(_ context.Context, username string) error {
	for _, u := range r.users {
		if u.Username == username {
			u.IsOnline = false
		}
	}
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Product repository stub ──────────────────────────────────────────────────

type stubProductRepo struct {
	products map[primitive.ObjectID]*model.Product
	// failAdjust makes AdjustStock fail for the listed product ids.
	failAdjust map[primitive.ObjectID]error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products:   make(map[primitive.ObjectID]*model.Product),
		failAdjust: make(map[primitive.ObjectID]error),
	}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) List(_ context.Context, category string) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if category == "" || p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) AdjustStock(_ context.Context, id primitive.ObjectID, delta int) error {
	if err, ok := r.failAdjust[id]; ok {
		return err
	}
	p, ok := r.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Stock += delta
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Ticket repository stub ───────────────────────────────────────────────────

type stubTicketRepo struct {
	tickets map[primitive.ObjectID]*model.Ticket
	folios  map[string]bool
	// duplicateInserts forces ErrDuplicateKey for the first N inserts,
	// exercising the folio retry loop.
	duplicateInserts int
}

func newStubTicketRepo() *stubTicketRepo {
	return &stubTicketRepo{
		tickets: make(map[primitive.ObjectID]*model.Ticket),
		folios:  make(map[string]bool),
	}
}

func (r *stubTicketRepo) Insert(_ context.Context, t *model.Ticket) error {
	if r.duplicateInserts > 0 {
		r.duplicateInserts--
		return repository.ErrDuplicateKey
	}
	if r.folios[t.Folio] {
		return repository.ErrDuplicateKey
	}
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	r.folios[t.Folio] = true
	cp := *t
	r.tickets[t.ID] = &cp
	return nil
}

func (r *stubTicketRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Ticket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *stubTicketRepo) List(_ context.Context) ([]model.Ticket, error) {
	out := make([]model.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTicketRepo) SetCancelled(_ context.Context, id primitive.ObjectID) error {
	t, ok := r.tickets[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Status = model.TicketCancelled
	return nil
}

var _ repository.TicketRepository = (*stubTicketRepo)(nil)

// ── Repair repository stub ───────────────────────────────────────────────────

type stubRepairRepo struct {
	orders map[primitive.ObjectID]*model.RepairOrder
}

func newStubRepairRepo() *stubRepairRepo {
	return &stubRepairRepo{orders: make(map[primitive.ObjectID]*model.RepairOrder)}
}

func (r *stubRepairRepo) Insert(_ context.Context, o *model.RepairOrder) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *stubRepairRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.RepairOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubRepairRepo) List(_ context.Context) ([]model.RepairOrder, error) {
	out := make([]model.RepairOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubRepairRepo) Update(_ context.Context, o *model.RepairOrder) error {
	if _, ok := r.orders[o.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *stubRepairRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

var _ repository.RepairRepository = (*stubRepairRepo)(nil)

// ── File store stub ──────────────────────────────────────────────────────────

// stubFileStore records saved uploads and returns deterministic URLs without
// touching the filesystem.
type stubFileStore struct {
	saved []string
	err   error
}

func (s *stubFileStore) Save(fh *multipart.FileHeader, subdir, field string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	url := fmt.Sprintf("http://localhost:4000/uploads/%s/%s-%d-%s", subdir, field, len(s.saved), fh.Filename)
	s.saved = append(s.saved, url)
	return url, nil
}

var _ service.FileStore = (*stubFileStore)(nil)
