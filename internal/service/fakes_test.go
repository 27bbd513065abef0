package service

import (
	"context"
	"sort"
	"strings"

	"notes-backend/internal/entity"
	"notes-backend/internal/repository/contract"
	"notes-backend/internal/repository/specification"
	"notes-backend/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repositories interpreting the query specifications by type,
// so service logic can be exercised without a database.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if userMatches(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, u := range r.users {
		if userMatches(u, specs) {
			n++
		}
	}
	return n, nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByUsername:
			if u.Username != s.Username {
				return false
			}
		}
	}
	return true
}

type fakeNoteRepo struct {
	notes map[uuid.UUID]*entity.Note
	users *fakeUserRepo
}

func newFakeNoteRepo(users *fakeUserRepo) *fakeNoteRepo {
	return &fakeNoteRepo{
		notes: map[uuid.UUID]*entity.Note{},
		users: users,
	}
}

func (r *fakeNoteRepo) Create(_ context.Context, note *entity.Note) error {
	cp := *note
	cp.Owner = nil
	r.notes[note.Id] = &cp
	return nil
}

func (r *fakeNoteRepo) Update(_ context.Context, note *entity.Note) error {
	cp := *note
	cp.Owner = nil
	r.notes[note.Id] = &cp
	return nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.notes, id)
	return nil
}

func (r *fakeNoteRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.notes {
		if noteMatches(n, specs) {
			return r.withOwner(n), nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var result []*entity.Note
	for _, n := range r.notes {
		if noteMatches(n, specs) {
			result = append(result, r.withOwner(n))
		}
	}
	applyOrdering(result, specs)
	return result, nil
}

func (r *fakeNoteRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, note := range r.notes {
		if noteMatches(note, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeNoteRepo) withOwner(n *entity.Note) *entity.Note {
	cp := *n
	if owner, ok := r.users.users[n.UserId]; ok {
		ownerCp := *owner
		cp.Owner = &ownerCp
	}
	return &cp
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		case specification.TitleOrContentILike:
			term := strings.ToLower(s.Term)
			if !strings.Contains(strings.ToLower(n.Title), term) &&
				!strings.Contains(strings.ToLower(n.Content), term) {
				return false
			}
		}
	}
	return true
}

func applyOrdering(notes []*entity.Note, specs []specification.Specification) {
	var orders []specification.OrderBy
	for _, spec := range specs {
		if o, ok := spec.(specification.OrderBy); ok {
			orders = append(orders, o)
		}
	}
	if len(orders) == 0 {
		return
	}

	sort.SliceStable(notes, func(i, j int) bool {
		for _, o := range orders {
			var ti, tj int64
			switch o.Field {
			case "updated_at":
				ti, tj = notes[i].UpdatedAt.UnixNano(), notes[j].UpdatedAt.UnixNano()
			case "created_at":
				ti, tj = notes[i].CreatedAt.UnixNano(), notes[j].CreatedAt.UnixNano()
			default:
				continue
			}
			if ti == tj {
				continue
			}
			if o.Desc {
				return ti > tj
			}
			return ti < tj
		}
		return false
	})
}

type fakeUow struct {
	users *fakeUserRepo
	notes *fakeNoteRepo
}

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error               { return nil }
func (u *fakeUow) Rollback() error             { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository { return u.users }
func (u *fakeUow) NoteRepository() contract.NoteRepository { return u.notes }

type fakeUowFactory struct {
	uow *fakeUow
}

func newFakeUowFactory() *fakeUowFactory {
	users := newFakeUserRepo()
	return &fakeUowFactory{
		uow: &fakeUow{
			users: users,
			notes: newFakeNoteRepo(users),
		},
	}
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
