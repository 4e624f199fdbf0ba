package services

import (
	"context"

	"MediCareHub/configuration"
	"MediCareHub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Surrogate integer ids come from a per-collection counter document,
* atomically incremented with an upserting FindOneAndUpdate.
 */
func NextSequence(ctx context.Context, name string) (int, error) {
	coll := configuration.OpenCollection(utils.CounterCollection)
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
