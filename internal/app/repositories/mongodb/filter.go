package mongodb

import (
	"fmt"
	"regexp"

	"github.com/yigit/studentportal/internal/pkg/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// documentField maps a canonical field name to its document key
func documentField(field string) string {
	if field == "id" {
		return "_id"
	}
	return field
}

func fieldValue(field string, v interface{}) interface{} {
	if field == "id" {
		return idValue(v)
	}
	return v
}

// bsonFilter renders a predicate as a MongoDB query document
func bsonFilter(pred query.Predicate) (bson.M, error) {
	switch p := pred.(type) {
	case nil:
		return bson.M{}, nil
	case query.And:
		if len(p) == 0 {
			return bson.M{}, nil
		}
		children, err := bsonChildren(p)
		if err != nil {
			return nil, err
		}
		return bson.M{"$and": children}, nil
	case query.Or:
		if len(p) == 0 {
			// $or rejects an empty array
			return bson.M{"_id": bson.M{"$in": bson.A{}}}, nil
		}
		children, err := bsonChildren(p)
		if err != nil {
			return nil, err
		}
		return bson.M{"$or": children}, nil
	case query.Eq:
		return bson.M{documentField(p.Field): fieldValue(p.Field, p.Value)}, nil
	case query.Ne:
		return bson.M{documentField(p.Field): bson.M{"$ne": fieldValue(p.Field, p.Value)}}, nil
	case query.ContainsFold:
		return bson.M{documentField(p.Field): primitive.Regex{Pattern: regexp.QuoteMeta(p.Substr), Options: "i"}}, nil
	default:
		return nil, fmt.Errorf("unsupported predicate %T", pred)
	}
}

func bsonChildren(preds []query.Predicate) (bson.A, error) {
	children := make(bson.A, 0, len(preds))
	for _, child := range preds {
		doc, err := bsonFilter(child)
		if err != nil {
			return nil, err
		}
		children = append(children, doc)
	}
	return children, nil
}

// bsonSort renders a sort order for options.Find().SetSort
func bsonSort(order query.Sort) bson.D {
	if order.Field == "" {
		return bson.D{}
	}
	direction := 1
	if order.Descending {
		direction = -1
	}
	return bson.D{{Key: documentField(order.Field), Value: direction}}
}
