package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusmarket/internal/apperrors"
	"campusmarket/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// translateError maps driver errors onto the apperrors taxonomy.
func translateError(err error, resource, operation string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperrors.NotFound(resource)
	case mongo.IsDuplicateKeyError(err):
		return apperrors.DuplicateKey(fmt.Sprintf("%s already exists", resource), err)
	default:
		return apperrors.Store(operation, err)
	}
}

// findPage runs a count and a paged find over the same filter.
func findPage[T any](ctx context.Context, collection *mongo.Collection, filter bson.M, params *utils.PaginationParams, resource string) ([]*T, int64, error) {
	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Store("count "+resource, err)
	}

	cursor, err := collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, apperrors.Store("list "+resource, err)
	}
	defer cursor.Close(ctx)

	items := make([]*T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, apperrors.Store("decode "+resource, err)
	}

	return items, total, nil
}

func setWithTimestamp(updates map[string]interface{}, now time.Time) bson.M {
	set := bson.M{}
	for k, v := range updates {
		set[k] = v
	}
	set["updated_at"] = now
	return set
}
