package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qr-attendance/config"
	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
)

// StaffRepository owns staff accounts. Finders return (nil, nil) when nothing matches.
type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	FindByUsername(ctx context.Context, username string) (*models.Staff, error)
	FindByStaffID(ctx context.Context, staffID int64) (*models.Staff, error)
	FindAll(ctx context.Context) ([]models.Staff, error)
	SetActive(ctx context.Context, staffID int64, active bool) (*models.Staff, error)
}

type staffRepository struct {
	collection *mongo.Collection
}

func NewStaffRepository(db *mongo.Database) StaffRepository {
	return &staffRepository{collection: db.Collection(config.StaffCollection)}
}

func (r *staffRepository) Create(ctx context.Context, staff *models.Staff) error {
	res, err := r.collection.InsertOne(ctx, staff)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.InvalidState("Username already exists")
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		staff.ID = id
	}
	return nil
}

func (r *staffRepository) findOne(ctx context.Context, filter bson.M) (*models.Staff, error) {
	var staff models.Staff
	err := r.collection.FindOne(ctx, filter).Decode(&staff)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find staff: %w", err)
	}
	return &staff, nil
}

func (r *staffRepository) FindByUsername(ctx context.Context, username string) (*models.Staff, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *staffRepository) FindByStaffID(ctx context.Context, staffID int64) (*models.Staff, error) {
	return r.findOne(ctx, bson.M{"staffId": staffID})
}

func (r *staffRepository) FindAll(ctx context.Context) ([]models.Staff, error) {
	opts := options.Find().SetSort(bson.D{{Key: "staffId", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer cursor.Close(ctx)

	staff := []models.Staff{}
	if err = cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("decode staff: %w", err)
	}
	return staff, nil
}

func (r *staffRepository) SetActive(ctx context.Context, staffID int64, active bool) (*models.Staff, error) {
	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var staff models.Staff
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"staffId": staffID}, update, opts).Decode(&staff)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update staff %d: %w", staffID, err)
	}
	return &staff, nil
}
