package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Observer wraps each logical store operation, e.g. for latency metrics.
type Observer interface {
	ObserveStore(op string, fn func() error) error
}

type noopObserver struct{}

func (noopObserver) ObserveStore(_ string, fn func() error) error { return fn() }

// Collection names match the existing cookingDB deployment.
const (
	usersCollection       = "users"
	mealsCollection       = "meals"
	upcomingCollection    = "upcoming"
	reviewsCollection     = "reviews"
	membershipCollection  = "membership"
	mealRequestCollection = "mealRequest"
	aboutMeCollection     = "aboutMe"
)

// Store is opened once at startup, shared by every handler and gate, and
// closed on shutdown.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	Users        *UsersRepo
	Meals        *MealsRepo
	Upcoming     *MealsRepo
	Reviews      *ReviewsRepo
	Packages     *MembershipRepo
	MealRequests *MealRequestsRepo
	About        *AboutRepo
}

func NewStore(client *mongo.Client, dbName string, obs Observer) *Store {
	if obs == nil {
		obs = noopObserver{}
	}

	database := client.Database(dbName)

	return &Store{
		client:       client,
		db:           database,
		Users:        NewUsersRepo(database.Collection(usersCollection), obs),
		Meals:        NewMealsRepo(database.Collection(mealsCollection), obs),
		Upcoming:     NewMealsRepo(database.Collection(upcomingCollection), obs),
		Reviews:      NewReviewsRepo(database.Collection(reviewsCollection), obs),
		Packages:     NewMembershipRepo(database.Collection(membershipCollection), obs),
		MealRequests: NewMealRequestsRepo(database.Collection(mealRequestCollection), obs),
		About:        NewAboutRepo(database.Collection(aboutMeCollection), obs),
	}
}

// EnsureIndexes creates the unique email index that backs the idempotent
// first sign-in insert.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_unique"),
	})

	return err
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
