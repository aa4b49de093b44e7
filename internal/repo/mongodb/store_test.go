package mongodb

import (
	"context"
	"testing"

	"github.com/geocoder89/mealshare/internal/domain/meal"
	"github.com/geocoder89/mealshare/internal/domain/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "cookingDB.test"

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func updateAck(matched, modified int32) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: matched},
		bson.E{Key: "nModified", Value: modified},
	)
}

// lastUpdate returns the update document of the most recent update command.
func lastUpdate(mt *mtest.T) bson.Raw {
	mt.Helper()

	var cmd bson.Raw
	for _, evt := range mt.GetAllStartedEvents() {
		if evt.CommandName == "update" {
			cmd = evt.Command
		}
	}
	if cmd == nil {
		mt.Fatalf("no update command was sent")
	}

	return cmd.Lookup("updates").Array().Index(0).Value().Document().Lookup("u").Document()
}

func TestMealsRepo_Like(t *testing.T) {
	mt := newMock(t)
	id := primitive.NewObjectID()

	mt.Run("already_liked_is_noop", func(mt *mtest.T) {
		repo := NewMealsRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "likes", Value: bson.A{"a@x.com", "b@x.com"}},
		}))

		out, err := repo.Like(context.Background(), id, "a@x.com")
		if err != nil {
			t.Fatalf("Like error: %v", err)
		}
		if !out.AlreadyLiked {
			t.Fatalf("expected already-liked outcome, got %+v", out)
		}
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "update" {
				t.Fatalf("no update should be sent for a repeat like")
			}
		}
	})

	mt.Run("new_actor_uses_add_to_set", func(mt *mtest.T) {
		repo := NewMealsRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "likes", Value: bson.A{"b@x.com"}},
			}),
			updateAck(1, 1),
		)

		out, err := repo.Like(context.Background(), id, "a@x.com")
		if err != nil {
			t.Fatalf("Like error: %v", err)
		}
		if out.AlreadyLiked || out.Update.ModifiedCount != 1 {
			t.Fatalf("unexpected outcome %+v", out)
		}

		actor := lastUpdate(mt).Lookup("$addToSet", "likes").StringValue()
		if actor != "a@x.com" {
			t.Fatalf("expected $addToSet likes=a@x.com, got %q", actor)
		}
	})

	mt.Run("missing_likes_field_is_empty_set", func(mt *mtest.T) {
		repo := NewMealsRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "_id", Value: id}}),
			updateAck(1, 1),
		)

		out, err := repo.Like(context.Background(), id, "a@x.com")
		if err != nil {
			t.Fatalf("Like error: %v", err)
		}
		if out.AlreadyLiked {
			t.Fatalf("expected a mutation, got no-op")
		}
	})

	mt.Run("missing_document_matches_nothing", func(mt *mtest.T) {
		repo := NewMealsRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
			updateAck(0, 0),
		)

		out, err := repo.Like(context.Background(), id, "a@x.com")
		if err != nil {
			t.Fatalf("Like error: %v", err)
		}
		if out.AlreadyLiked || out.Update.MatchedCount != 0 {
			t.Fatalf("unexpected outcome %+v", out)
		}
	})
}

func TestMealsRepo_IncrementReviews(t *testing.T) {
	mt := newMock(t)

	mt.Run("uses_inc", func(mt *mtest.T) {
		repo := NewMealsRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(updateAck(1, 1))

		res, err := repo.IncrementReviews(context.Background(), primitive.NewObjectID(), -2)
		if err != nil {
			t.Fatalf("IncrementReviews error: %v", err)
		}
		if !res.Acknowledged || res.MatchedCount != 1 {
			t.Fatalf("unexpected result %+v", res)
		}

		if delta := lastUpdate(mt).Lookup("$inc", "reviews").Int64(); delta != -2 {
			t.Fatalf("expected $inc reviews=-2, got %d", delta)
		}
	})
}

func TestMealsRepo_GetByIDMissingIsNil(t *testing.T) {
	mt := newMock(t)

	mt.Run("nil", func(mt *mtest.T) {
		repo := NewMealsRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		m, err := repo.GetByID(context.Background(), primitive.NewObjectID())
		if err != nil {
			t.Fatalf("GetByID error: %v", err)
		}
		if m != nil {
			t.Fatalf("expected nil meal, got %+v", m)
		}
	})
}

func TestMealsRepo_ListAndCreate(t *testing.T) {
	mt := newMock(t)

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMealsRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "Ramen"}, {Key: "reviews", Value: int64(3)}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "Pho"}},
		))

		meals, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(meals) != 2 || meals[0].Title != "Ramen" || meals[0].Reviews != 3 {
			t.Fatalf("unexpected meals %+v", meals)
		}
	})

	mt.Run("create_returns_generated_id", func(mt *mtest.T) {
		repo := NewMealsRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		res, err := repo.Create(context.Background(), meal.Meal{Title: "Ramen"})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if res.InsertedID == nil || res.InsertedID.IsZero() {
			t.Fatalf("expected generated id, got %+v", res)
		}
	})
}

func TestUsersRepo(t *testing.T) {
	mt := newMock(t)

	mt.Run("create_existing_email_is_not_inserted", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@x.com"},
		}))

		_, created, err := repo.Create(context.Background(), user.User{Email: "a@x.com"})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if created {
			t.Fatalf("expected no insert for an existing email")
		}
	})

	mt.Run("create_duplicate_key_race_is_not_an_error", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key error"}),
		)

		_, created, err := repo.Create(context.Background(), user.User{Email: "a@x.com"})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if created {
			t.Fatalf("expected created=false after duplicate key")
		}
	})

	mt.Run("role_by_email", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "role", Value: "Admin"},
		}))

		role, found, err := repo.RoleByEmail(context.Background(), "a@x.com")
		if err != nil || !found || role != user.RoleAdmin {
			t.Fatalf("got role=%q found=%v err=%v", role, found, err)
		}
	})

	mt.Run("role_by_email_missing_user", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, found, err := repo.RoleByEmail(context.Background(), "nobody@x.com")
		if err != nil || found {
			t.Fatalf("got found=%v err=%v", found, err)
		}
	})

	mt.Run("seed_promotes_existing_member", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(updateAck(1, 1))

		out, err := repo.SeedAdmin(context.Background(), "root@x.com")
		if err != nil {
			t.Fatalf("SeedAdmin error: %v", err)
		}
		if out != user.SeedPromoted {
			t.Fatalf("outcome=%s, want promoted", out)
		}

		u := lastUpdate(mt)
		if role := u.Lookup("$set", "role").StringValue(); role != user.RoleAdmin {
			t.Fatalf("expected $set role=Admin, got %q", role)
		}
		if email := u.Lookup("$setOnInsert", "email").StringValue(); email != "root@x.com" {
			t.Fatalf("expected $setOnInsert email, got %q", email)
		}
	})

	mt.Run("seed_inserts_missing_admin", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(0)},
			bson.E{Key: "upserted", Value: bson.A{bson.D{
				{Key: "index", Value: int32(0)},
				{Key: "_id", Value: primitive.NewObjectID()},
			}}},
		))

		out, err := repo.SeedAdmin(context.Background(), "root@x.com")
		if err != nil || out != user.SeedCreated {
			t.Fatalf("got outcome=%s err=%v, want created", out, err)
		}
	})

	mt.Run("seed_existing_admin_is_unchanged", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(updateAck(1, 0))

		out, err := repo.SeedAdmin(context.Background(), "root@x.com")
		if err != nil || out != user.SeedUnchanged {
			t.Fatalf("got outcome=%s err=%v, want unchanged", out, err)
		}
	})

	mt.Run("promote_sets_admin_role", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.Coll, noopObserver{})
		mt.AddMockResponses(updateAck(0, 0))

		res, err := repo.PromoteToAdmin(context.Background(), primitive.NewObjectID())
		if err != nil {
			t.Fatalf("PromoteToAdmin error: %v", err)
		}
		if res.MatchedCount != 0 {
			t.Fatalf("expected zero matches, got %+v", res)
		}

		if role := lastUpdate(mt).Lookup("$set", "role").StringValue(); role != user.RoleAdmin {
			t.Fatalf("expected $set role=Admin, got %q", role)
		}
	})
}
