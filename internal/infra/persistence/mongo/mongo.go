// Package mongo contains the MongoDB implementation of the persistence layer.
package mongo

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"storehub/config"
	"storehub/internal/domain/lifecycle"
	"storehub/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongod "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/fx"
)

// Collection name constants.
const (
	colAccounts = "accounts"
	colStores   = "stores"
	colProducts = "products"
)

const defaultConnectTimeout = 10 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and registers ping, index migration and disconnect hooks.
func New(params Params) (*mongod.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil {
		return nil, errors.New("mongo configuration is missing")
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	client, err := mongod.Connect(options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout).
		SetAppName(params.Config.Env.ServiceName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := Migrate(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("MongoDB connected", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// Migrate creates the indexes of every collection.
func Migrate(ctx context.Context, db *mongod.Database) error {
	for col, models := range migrationIndexes() {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "migrate %s indexes", col)
		}
	}

	return nil
}

func migrationIndexes() map[string][]mongod.IndexModel {
	return map[string][]mongod.IndexModel{
		colAccounts: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "role", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "favorites", Value: 1}}},
		},
		colStores: {
			{Keys: bson.D{{Key: "vendor_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "rating", Value: -1}}},
		},
		colProducts: {
			{Keys: bson.D{{Key: "store_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}
}

func now() time.Time {
	return time.Now().UTC()
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongod.ErrNoDocuments)
}

// keywordRegex builds a case-insensitive substring match for user input.
func keywordRegex(keyword string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

func parseIDs(ids []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		if id, err := uuid.Parse(raw); err == nil {
			out = append(out, id)
		}
	}

	return out
}
