package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/geocoder89/mealshare/internal/domain/meal"
	"github.com/geocoder89/mealshare/internal/domain/result"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealsRepo backs both the meals and the upcoming collections.
type MealsRepo struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]meal.Meal
	order []primitive.ObjectID
}

func NewMealsRepo() *MealsRepo {
	return &MealsRepo{
		items: make(map[primitive.ObjectID]meal.Meal),
	}
}

func (r *MealsRepo) List(_ context.Context) ([]meal.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]meal.Meal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.items[id]))
	}
	return out, nil
}

func (r *MealsRepo) GetByID(_ context.Context, id primitive.ObjectID) (*meal.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	m = clone(m)
	return &m, nil
}

func (r *MealsRepo) Create(_ context.Context, m meal.Meal) (result.InsertResult, error) {
	m = clone(m)
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}

	r.mu.Lock()
	r.items[m.ID] = m
	r.order = append(r.order, m.ID)
	r.mu.Unlock()

	return result.Inserted(m.ID), nil
}

func (r *MealsRepo) IncrementReviews(_ context.Context, id primitive.ObjectID, delta int64) (result.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok {
		return result.UpdateResult{Acknowledged: true}, nil
	}

	m.Reviews += delta
	r.items[id] = m

	res := result.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if delta != 0 {
		res.ModifiedCount = 1
	}
	return res, nil
}

// Like checks and adds under one lock, so concurrent likes by the same actor
// leave exactly one entry.
func (r *MealsRepo) Like(_ context.Context, id primitive.ObjectID, actor string) (meal.LikeOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok {
		return meal.LikeOutcome{Update: result.UpdateResult{Acknowledged: true}}, nil
	}

	if slices.Contains(m.Likes, actor) {
		return meal.LikeOutcome{AlreadyLiked: true}, nil
	}

	m.Likes = append(slices.Clone(m.Likes), actor)
	r.items[id] = m

	return meal.LikeOutcome{Update: result.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}}, nil
}

func (r *MealsRepo) Delete(_ context.Context, id primitive.ObjectID) (result.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return result.DeleteResult{Acknowledged: true}, nil
	}

	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(v primitive.ObjectID) bool { return v == id })

	return result.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func clone(m meal.Meal) meal.Meal {
	m.Likes = slices.Clone(m.Likes)
	if m.Likes == nil {
		m.Likes = []string{}
	}
	m.Ingredients = slices.Clone(m.Ingredients)
	return m
}
