package leads

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rorygeddes/Luni.ca/pkg/db"
)

const (
	COLLECTION_NAME_BANK_CONNECTIONS = "bank_connections"
)

var (
	// ErrNotConfigured is returned when the store has no usable credentials.
	ErrNotConfigured = errors.New("database not configured")
	// ErrNoCollectionFound is returned when none of the candidate
	// collections exist in the backing database.
	ErrNoCollectionFound = errors.New("no survey collection found")
)

type LeadsDBService struct {
	DBClient             *mongo.Client
	timeout              int
	dbName               string
	candidateCollections []string
}

func NewLeadsDBService(configs db.DBConfig) (*LeadsDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	leadsDBSc := &LeadsDBService{
		DBClient:             dbClient,
		timeout:              configs.Timeout,
		dbName:               configs.DBName,
		candidateCollections: configs.CandidateCollections,
	}

	if err := leadsDBSc.ensureIndexes(); err != nil {
		slog.Error("Error ensuring indexes for leads DB", slog.String("error", err.Error()))
	}

	return leadsDBSc, nil
}

func (dbService *LeadsDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *LeadsDBService) database() *mongo.Database {
	return dbService.DBClient.Database(dbService.dbName)
}

func (dbService *LeadsDBService) collection(name string) *mongo.Collection {
	return dbService.database().Collection(name)
}

func (dbService *LeadsDBService) collectionBankConnections() *mongo.Collection {
	return dbService.database().Collection(COLLECTION_NAME_BANK_CONNECTIONS)
}

// collectionExists checks for the collection by name so that reads and
// writes can skip candidates the deployment never provisioned. Creating
// missing collections implicitly (as inserts and index creation would do)
// must be avoided here, otherwise the candidate scan loses its meaning.
func (dbService *LeadsDBService) collectionExists(ctx context.Context, name string) (bool, error) {
	names, err := dbService.database().ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

func (dbService *LeadsDBService) ensureIndexes() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	for _, name := range dbService.candidateCollections {
		exists, err := dbService.collectionExists(ctx, name)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		_, err = dbService.collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "created_at", Value: -1},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
