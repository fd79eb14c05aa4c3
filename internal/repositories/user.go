package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/models"
)

// ErrDuplicateKey is returned by Insert when a unique-index constraint
// (email) is violated.
var ErrDuplicateKey = errors.New("duplicate key")

const usersCollection = "users"

// UserReadRepository handles user read operations
type UserReadRepository struct {
	coll *mongo.Collection
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{coll: db.Collection(usersCollection)}
}

// FindAll returns every user document in insertion order.
func (r *UserReadRepository) FindAll(ctx context.Context) ([]models.UserDB, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		logger.Log.Infow("find all users", "error", err)
		return nil, err
	}

	users := make([]models.UserDB, 0)
	err = cursor.All(ctx, &users)

	logger.Log.Infow("find all users",
		"count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID returns the user with the given id, or nil if no such document exists.
func (r *UserReadRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.UserDB, error) {
	var user models.UserDB
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)

	logger.Log.Infow("find user by id",
		"id", id.Hex(),
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user with the given email, or nil if no such document exists.
func (r *UserReadRepository) FindByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	var user models.UserDB
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)

	logger.Log.Infow("find user by email",
		"email", email,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	coll *mongo.Collection
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. The index is the single
// serialization point for email uniqueness: concurrent inserts with the same
// email cannot both succeed.
func (r *UserWriteRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	logger.Log.Infow("ensure user indexes", "error", err)

	return err
}

// Insert persists a new user document, assigning id and timestamps.
// The password must already be hashed by the caller.
func (r *UserWriteRepository) Insert(ctx context.Context, user models.UserDB) (*models.UserDB, error) {
	// BSON datetimes carry millisecond precision; truncate so the returned
	// record matches what a later read will see.
	now := time.Now().UTC().Truncate(time.Millisecond)
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, user)

	logger.Log.Infow("insert user",
		"id", user.ID.Hex(),
		"email", user.Email,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateByID applies the non-nil fields of the update to the document and
// refreshes updatedAt, returning the post-update document. Returns nil if no
// document has the given id. Nil fields stay untouched in the store.
func (r *UserWriteRepository) UpdateByID(ctx context.Context, id bson.ObjectID, update models.UserUpdate) (*models.UserDB, error) {
	set := bson.M{"updatedAt": time.Now().UTC().Truncate(time.Millisecond)}
	if update.FirstName != nil {
		set["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		set["lastName"] = *update.LastName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.JobTitle != nil {
		set["jobTitle"] = *update.JobTitle
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.Password != nil {
		set["password"] = *update.Password
	}

	var user models.UserDB
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)

	logger.Log.Infow("update user by id",
		"id", id.Hex(),
		"fields", len(set)-1,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteByID removes the document with the given id. Reports whether a
// document was actually removed.
func (r *UserWriteRepository) DeleteByID(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})

	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}

	logger.Log.Infow("delete user by id",
		"id", id.Hex(),
		"deleted", deleted,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}
