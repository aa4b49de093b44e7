package memory

import (
	"context"
	"sync"

	"github.com/geocoder89/mealshare/internal/domain/result"
	"github.com/geocoder89/mealshare/internal/domain/user"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UsersRepo struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]user.User
	order []primitive.ObjectID
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		items: make(map[primitive.ObjectID]user.User),
	}
}

func (r *UsersRepo) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *UsersRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail(email)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UsersRepo) Create(_ context.Context, u user.User) (result.InsertResult, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail(u.Email); ok {
		return result.InsertResult{}, false, nil
	}

	u.ID = primitive.NewObjectID()
	r.put(u)

	return result.Inserted(u.ID), true, nil
}

func (r *UsersRepo) RoleByEmail(_ context.Context, email string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail(email)
	return u.Role, ok, nil
}

func (r *UsersRepo) PromoteToAdmin(_ context.Context, id primitive.ObjectID) (result.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return result.UpdateResult{Acknowledged: true}, nil
	}

	res := result.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if u.Role != user.RoleAdmin {
		u.Role = user.RoleAdmin
		r.items[id] = u
		res.ModifiedCount = 1
	}
	return res, nil
}

func (r *UsersRepo) UpdateProfile(_ context.Context, email, packageName string, badge *string) (result.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail(email)
	if !ok {
		return result.UpdateResult{Acknowledged: true}, nil
	}

	u.PackageName = packageName
	u.Badge = badge
	r.items[u.ID] = u

	return result.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *UsersRepo) SeedAdmin(_ context.Context, email string) (user.SeedOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail(email)
	if !ok {
		r.put(user.User{ID: primitive.NewObjectID(), Email: email, Role: user.RoleAdmin})
		return user.SeedCreated, nil
	}

	if u.Role == user.RoleAdmin {
		return user.SeedUnchanged, nil
	}

	u.Role = user.RoleAdmin
	r.items[u.ID] = u
	return user.SeedPromoted, nil
}

// callers hold mu
func (r *UsersRepo) byEmail(email string) (user.User, bool) {
	for _, id := range r.order {
		if u := r.items[id]; u.Email == email {
			return u, true
		}
	}
	return user.User{}, false
}

func (r *UsersRepo) put(u user.User) {
	r.items[u.ID] = u
	r.order = append(r.order, u.ID)
}
