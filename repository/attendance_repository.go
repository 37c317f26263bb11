package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qr-attendance/config"
	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
)

// EmployeeRepository owns employee documents and their embedded attendance logs.
// Finders return (nil, nil) when the employee does not exist.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	FindByUserID(ctx context.Context, userID int64) (*models.Employee, error)
	FindAll(ctx context.Context) ([]models.Employee, error)
	SetSuspended(ctx context.Context, userID int64, suspended bool) (*models.Employee, error)
	Delete(ctx context.Context, userID int64) (bool, error)

	// AppendIfStatus appends entry and sets currentStatus to entry.Status, but only while the
	// employee is unsuspended and its currentStatus still equals expected. It returns the
	// updated employee, or nil when the condition no longer held.
	AppendIfStatus(ctx context.Context, userID int64, expected models.Status, entry models.LogEntry) (*models.Employee, error)

	// QueryLogs returns flattened log rows, newest first, and the total before pagination.
	QueryLogs(ctx context.Context, filter models.LogFilter) ([]models.LogRow, int64, error)

	// EntriesBetween groups, per employee, the entries with timestamp in [since, until).
	EntriesBetween(ctx context.Context, since, until time.Time) ([]models.TodayRow, error)
}

type employeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) EmployeeRepository {
	return &employeeRepository{collection: db.Collection(config.EmployeeCollection)}
}

func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if employee.Attendance == nil {
		employee.Attendance = []models.LogEntry{}
	}
	res, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.InvalidState(fmt.Sprintf("User %d already exists", employee.UserID))
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		employee.ID = id
	}
	return nil
}

func (r *employeeRepository) FindByUserID(ctx context.Context, userID int64) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find employee %d: %w", userID, err)
	}
	return &employee, nil
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "userId", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cursor.Close(ctx)

	employees := []models.Employee{}
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) SetSuspended(ctx context.Context, userID int64, suspended bool) (*models.Employee, error) {
	update := bson.M{"$set": bson.M{"isSuspended": suspended, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var employee models.Employee
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, opts).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update suspension for employee %d: %w", userID, err)
	}
	return &employee, nil
}

func (r *employeeRepository) Delete(ctx context.Context, userID int64) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return false, fmt.Errorf("delete employee %d: %w", userID, err)
	}
	return res.DeletedCount > 0, nil
}

func (r *employeeRepository) AppendIfStatus(ctx context.Context, userID int64, expected models.Status, entry models.LogEntry) (*models.Employee, error) {
	filter := bson.M{
		"userId":      userID,
		"isSuspended": bson.M{"$ne": true},
	}
	if expected == models.StatusOut {
		// Documents written before currentStatus existed count as OUT.
		filter["currentStatus"] = bson.M{"$in": bson.A{models.StatusOut, nil}}
	} else {
		filter["currentStatus"] = expected
	}

	update := bson.M{
		"$push": bson.M{"attendance": entry},
		"$set": bson.M{
			"currentStatus": entry.Status,
			"updatedAt":     entry.Timestamp,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var employee models.Employee
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("append attendance for employee %d: %w", userID, err)
	}
	return &employee, nil
}

func fullNameExpr() bson.M {
	return bson.M{"$concat": bson.A{"$firstName", " ", "$lastName"}}
}

func containsRegex(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

func (r *employeeRepository) QueryLogs(ctx context.Context, f models.LogFilter) ([]models.LogRow, int64, error) {
	employeeMatch := bson.D{}
	if f.UserID != 0 {
		employeeMatch = append(employeeMatch, bson.E{Key: "userId", Value: f.UserID})
	}
	if f.Department != "" {
		employeeMatch = append(employeeMatch, bson.E{Key: "department", Value: containsRegex(f.Department)})
	}
	if f.Name != "" {
		quoted := regexp.QuoteMeta(f.Name)
		employeeMatch = append(employeeMatch, bson.E{Key: "$or", Value: bson.A{
			bson.M{"firstName": containsRegex(f.Name)},
			bson.M{"lastName": containsRegex(f.Name)},
			bson.M{"$expr": bson.M{"$regexMatch": bson.M{
				"input":   fullNameExpr(),
				"regex":   quoted,
				"options": "i",
			}}},
		}})
	}

	entryMatch := bson.D{}
	window := bson.M{}
	if !f.Since.IsZero() {
		window["$gte"] = f.Since
	}
	if !f.Until.IsZero() {
		window["$lt"] = f.Until
	}
	if len(window) > 0 {
		entryMatch = append(entryMatch, bson.E{Key: "attendance.timestamp", Value: window})
	}
	if f.Status != "" {
		entryMatch = append(entryMatch, bson.E{Key: "attendance.status", Value: f.Status})
	}

	rows := bson.A{}
	skip, limit := f.Paginate()
	if limit > 0 {
		if skip > 0 {
			rows = append(rows, bson.D{{Key: "$skip", Value: skip}})
		}
		rows = append(rows, bson.D{{Key: "$limit", Value: limit}})
	}
	rows = append(rows, bson.D{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 0},
		{Key: "userId", Value: 1},
		{Key: "name", Value: fullNameExpr()},
		{Key: "department", Value: 1},
		{Key: "timestamp", Value: "$attendance.timestamp"},
		{Key: "status", Value: "$attendance.status"},
		{Key: "markedBy", Value: "$attendance.markedBy"},
	}}})

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: employeeMatch}},
		{{Key: "$unwind", Value: "$attendance"}},
		{{Key: "$match", Value: entryMatch}},
		{{Key: "$sort", Value: bson.D{{Key: "attendance.timestamp", Value: -1}, {Key: "userId", Value: 1}}}},
		{{Key: "$facet", Value: bson.D{
			{Key: "rows", Value: rows},
			{Key: "total", Value: bson.A{bson.D{{Key: "$count", Value: "n"}}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("aggregate attendance logs: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Rows  []models.LogRow `bson:"rows"`
		Total []struct {
			N int64 `bson:"n"`
		} `bson:"total"`
	}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, 0, fmt.Errorf("decode attendance logs: %w", err)
	}

	if len(result) == 0 || len(result[0].Total) == 0 {
		return []models.LogRow{}, 0, nil
	}
	logs := result[0].Rows
	if logs == nil {
		logs = []models.LogRow{}
	}
	return logs, result[0].Total[0].N, nil
}

func (r *employeeRepository) EntriesBetween(ctx context.Context, since, until time.Time) ([]models.TodayRow, error) {
	inWindow := bson.M{"$and": bson.A{
		bson.M{"$gte": bson.A{"$$e.timestamp", since}},
		bson.M{"$lt": bson.A{"$$e.timestamp", until}},
	}}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"attendance": bson.M{"$elemMatch": bson.M{
			"timestamp": bson.M{"$gte": since, "$lt": until},
		}}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "userId", Value: 1},
			{Key: "name", Value: fullNameExpr()},
			{Key: "department", Value: 1},
			{Key: "currentStatus", Value: bson.M{"$ifNull": bson.A{"$currentStatus", models.StatusOut}}},
			{Key: "events", Value: bson.M{"$filter": bson.M{
				"input": "$attendance",
				"as":    "e",
				"cond":  inWindow,
			}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "userId", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate entries between %s and %s: %w", since, until, err)
	}
	defer cursor.Close(ctx)

	rows := []models.TodayRow{}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode grouped entries: %w", err)
	}
	return rows, nil
}
