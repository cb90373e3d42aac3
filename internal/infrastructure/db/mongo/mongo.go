package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Connect dials MongoDB, verifies connectivity with a ping, and prepares the
// unique email indexes both repositories depend on. The returned client owns
// the connection; callers disconnect it on shutdown.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	dialCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(database)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return client, db, nil
}

// ensureIndexes bootstraps the unique email indexes. They are the storage
// guarantee behind the application-level uniqueness checks, so a database
// handle is never handed out without them.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewEmployeeRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return NewAccountRepository(db).EnsureIndexes(ctx)
}
