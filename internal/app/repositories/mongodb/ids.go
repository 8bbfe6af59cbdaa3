package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Models carry ids as hex strings; documents store them as ObjectIDs.
// The driver decodes an ObjectID _id back into a string field as its hex form.

func newID() string {
	return primitive.NewObjectID().Hex()
}

// idFilter matches the document with the given hex id.
// ok is false when id is not a valid ObjectID, in which case no document can match.
func idFilter(id string) (filter bson.M, ok bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	return bson.M{"_id": oid}, true
}

// toDocument encodes v and stores id as its ObjectID _id
func toDocument(v interface{}, id string) (bson.D, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid document id %q: %w", id, err)
	}

	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	for i := range doc {
		if doc[i].Key == "_id" {
			doc[i].Value = oid
			return doc, nil
		}
	}
	return append(bson.D{{Key: "_id", Value: oid}}, doc...), nil
}

// idValue converts a hex id used in a predicate to its stored form
func idValue(v interface{}) interface{} {
	if s, ok := v.(string); ok {
		if oid, err := primitive.ObjectIDFromHex(s); err == nil {
			return oid
		}
	}
	return v
}
