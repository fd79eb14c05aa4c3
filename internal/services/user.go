package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/models"
	"github.com/sbilibin2017/gw-user-service/internal/repositories"
)

// Error variables
var (
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrInvalidGender      = errors.New("gender must be one of: male, female, others")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	FindAll(ctx context.Context) ([]models.UserDB, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Insert(ctx context.Context, user models.UserDB) (*models.UserDB, error)
	UpdateByID(ctx context.Context, id bson.ObjectID, update models.UserUpdate) (*models.UserDB, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (bool, error)
}

// PasswordHasher defines a one-way salted password transformation.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UserService owns the user lifecycle: validation, conditional password
// hashing, and the five CRUD operations.
type UserService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, hasher PasswordHasher) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		hasher: hasher,
	}
}

// List returns all stored users in insertion order.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.FindAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch users", "err", err)
		return nil, err
	}
	return users, nil
}

// Create validates the payload, hashes the password, and persists a new user.
// The password is always hashed on create (first write). Nothing is written
// to the store when validation or hashing fails.
func (svc *UserService) Create(ctx context.Context, user models.NewUser) (*models.UserDB, error) {
	// lastName is deliberately not part of the required-field check;
	// the create contract does not validate it.
	if user.FirstName == "" || user.Email == "" || user.Gender == "" ||
		user.JobTitle == "" || user.Password == "" {
		logger.Log.Errorw("missing required fields", "email", user.Email)
		return nil, ErrFieldsRequired
	}
	if !validGender(user.Gender) {
		logger.Log.Errorw("invalid gender", "gender", user.Gender)
		return nil, ErrInvalidGender
	}

	hashed, err := svc.hasher.Hash(user.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := svc.writer.Insert(ctx, models.UserDB{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		JobTitle:  user.JobTitle,
		Gender:    user.Gender,
		Password:  hashed,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			logger.Log.Errorw("email already exists", "email", user.Email)
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to insert user", "err", err)
		return nil, err
	}

	return created, nil
}

// GetByID returns the user with the given id.
func (svc *UserService) GetByID(ctx context.Context, id string) (*models.UserDB, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// No document can carry a malformed id.
		return nil, ErrUserNotFound
	}

	user, err := svc.reader.FindByID(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateByID applies only the fields present in the update to the stored
// user. The password is re-hashed whenever the payload carries a password
// field at all; the stored value is already a hash and cannot be compared to
// plaintext, so presence is the modification signal.
func (svc *UserService) UpdateByID(ctx context.Context, id string, update models.UserUpdate) (*models.UserDB, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if update.Gender != nil && !validGender(*update.Gender) {
		logger.Log.Errorw("invalid gender", "gender", *update.Gender)
		return nil, ErrInvalidGender
	}

	if update.Password != nil {
		hashed, err := svc.hasher.Hash(*update.Password)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, fmt.Errorf("hash password: %w", err)
		}
		update.Password = &hashed
	}

	user, err := svc.writer.UpdateByID(ctx, oid, update)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			logger.Log.Errorw("email already exists", "id", id)
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteByID removes the user with the given id. Hard delete, no tombstone.
func (svc *UserService) DeleteByID(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}

	deleted, err := svc.writer.DeleteByID(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func validGender(g string) bool {
	switch g {
	case models.GenderMale, models.GenderFemale, models.GenderOthers:
		return true
	}
	return false
}
