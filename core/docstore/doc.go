// Package docstore connects to the MongoDB catalog.
//
// Product documents stored there keep their native BSON shape (ObjectID ids, bson.A
// lists, Decimal128 prices); the variant formatter accepts those directly.
//
// # Usage
//
//	client, err := docstore.Connect(ctx, cfg.Mongo)
//	if err != nil {
//	    return err
//	}
//	defer client.Disconnect(ctx)
//	products := docstore.Collection(client, cfg.Mongo)
package docstore
