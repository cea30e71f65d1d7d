package repositories

import (
	"context"
	"regexp"
	"time"

	"verifika-project/microservices/assignments-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAssignmentRepository stores one document per assignment. The
// requiredCompetencies set is kept as a native string array, not a serialized
// blob, so filters and updates never parse JSON by hand.
type MongoAssignmentRepository struct {
	collection *mongo.Collection
}

func NewMongoAssignmentRepository(collection *mongo.Collection) *MongoAssignmentRepository {
	return &MongoAssignmentRepository{collection: collection}
}

func (r *MongoAssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) (primitive.ObjectID, error) {
	if assignment.ID.IsZero() {
		assignment.ID = primitive.NewObjectID()
	}
	result, err := r.collection.InsertOne(ctx, assignment)
	if err != nil {
		return primitive.NilObjectID, &models.DependencyError{Dependency: "mongodb", Err: err}
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoAssignmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Assignment, bool, error) {
	var assignment models.Assignment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &models.DependencyError{Dependency: "mongodb", Err: err}
	}
	return &assignment, true, nil
}

func (r *MongoAssignmentRepository) FindAll(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, int64, error) {
	filter = NormalizeFilter(filter)
	query := buildQuery(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, &models.DependencyError{Dependency: "mongodb", Err: err}
	}

	direction := -1
	if filter.SortAscending {
		direction = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: filter.SortBy, Value: direction}, {Key: "_id", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, &models.DependencyError{Dependency: "mongodb", Err: err}
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, 0, &models.DependencyError{Dependency: "mongodb", Err: err}
	}
	return assignments, total, nil
}

func (r *MongoAssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": assignment.ID}, assignment)
	if err != nil {
		return &models.DependencyError{Dependency: "mongodb", Err: err}
	}
	if result.MatchedCount == 0 {
		return &models.NotFoundError{Resource: "assignment", ID: assignment.ID.Hex()}
	}
	return nil
}

func (r *MongoAssignmentRepository) FindOverlapping(ctx context.Context, technicianID string, start, end time.Time, excludeID primitive.ObjectID) ([]models.Assignment, error) {
	query := bson.M{
		"technicianId":     technicianID,
		"status":           bson.M{"$in": []models.AssignmentStatus{models.StatusActive, models.StatusPaused}},
		"startDate":        bson.M{"$lte": end},
		"estimatedEndDate": bson.M{"$gte": start},
	}
	if !excludeID.IsZero() {
		query["_id"] = bson.M{"$ne": excludeID}
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, &models.DependencyError{Dependency: "mongodb", Err: err}
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, &models.DependencyError{Dependency: "mongodb", Err: err}
	}
	return assignments, nil
}

func (r *MongoAssignmentRepository) Stats(ctx context.Context) (models.AssignmentStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":                 nil,
			"total":               bson.M{"$sum": 1},
			"active":              statusCount(models.StatusActive),
			"paused":              statusCount(models.StatusPaused),
			"completed":           statusCount(models.StatusCompleted),
			"cancelled":           statusCount(models.StatusCancelled),
			"totalEstimatedHours": bson.M{"$sum": "$estimatedHours"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return models.AssignmentStats{}, &models.DependencyError{Dependency: "mongodb", Err: err}
	}
	defer cursor.Close(ctx)

	var results []models.AssignmentStats
	if err := cursor.All(ctx, &results); err != nil {
		return models.AssignmentStats{}, &models.DependencyError{Dependency: "mongodb", Err: err}
	}
	if len(results) == 0 {
		return models.AssignmentStats{}, nil
	}
	return results[0], nil
}

func statusCount(status models.AssignmentStatus) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{"$status", status}}, 1, 0,
	}}}
}

func buildQuery(filter models.AssignmentFilter) bson.M {
	query := bson.M{}
	if filter.TechnicianID != "" {
		query["technicianId"] = filter.TechnicianID
	}
	if filter.ClientID != "" {
		query["clientId"] = filter.ClientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.StartDateFrom != nil || filter.StartDateTo != nil {
		dateRange := bson.M{}
		if filter.StartDateFrom != nil {
			dateRange["$gte"] = *filter.StartDateFrom
		}
		if filter.StartDateTo != nil {
			dateRange["$lte"] = *filter.StartDateTo
		}
		query["startDate"] = dateRange
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"description": pattern},
			bson.M{"projectLabel": pattern},
			bson.M{"notes": pattern},
		}
	}
	return query
}
