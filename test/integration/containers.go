package integration

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Env struct {
	Mongo  *mongodb.MongoDBContainer
	Client *mongo.Client
	URI    string
	Cancel context.CancelFunc
}

func Setup(ctx context.Context) (*Env, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)

	mongoC, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		cancel()
		return nil, err
	}

	uri, err := mongoC.ConnectionString(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		cancel()
		return nil, err
	}

	return &Env{
		Mongo:  mongoC,
		Client: client,
		URI:    uri,
		Cancel: cancel,
	}, nil
}

func (e *Env) Teardown(ctx context.Context) {
	_ = e.Client.Disconnect(ctx)
	_ = e.Mongo.Terminate(ctx)
	e.Cancel()
}
