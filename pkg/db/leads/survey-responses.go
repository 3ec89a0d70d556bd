package leads

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaveSurveyResponse writes the response into the first candidate collection
// that exists and accepts the insert. Returns the collection name that took
// the write. If no candidate collection exists the write is reported as
// ErrNoCollectionFound; callers on the submission path treat this as
// non-fatal.
func (dbService *LeadsDBService) SaveSurveyResponse(response SurveyResponse) (string, error) {
	if dbService == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	for _, name := range dbService.candidateCollections {
		exists, err := dbService.collectionExists(ctx, name)
		if err != nil {
			return "", err
		}
		if !exists {
			slog.Debug("candidate collection not found, trying next", slog.String("collection", name))
			continue
		}

		if _, err := dbService.collection(name).InsertOne(ctx, response); err != nil {
			slog.Warn("insert rejected by candidate collection", slog.String("collection", name), slog.String("error", err.Error()))
			continue
		}
		return name, nil
	}

	return "", ErrNoCollectionFound
}

// GetSurveyResponses reads all responses from the first existing candidate
// collection, newest first.
func (dbService *LeadsDBService) GetSurveyResponses() ([]SurveyResponse, error) {
	if dbService == nil {
		return nil, ErrNotConfigured
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	for _, name := range dbService.candidateCollections {
		exists, err := dbService.collectionExists(ctx, name)
		if err != nil {
			return nil, err
		}
		if !exists {
			slog.Debug("candidate collection not found, trying next", slog.String("collection", name))
			continue
		}

		opts := options.Find().SetSort(bson.M{"created_at": -1})
		cursor, err := dbService.collection(name).Find(ctx, bson.M{}, opts)
		if err != nil {
			slog.Warn("read failed on candidate collection", slog.String("collection", name), slog.String("error", err.Error()))
			continue
		}

		responses := []SurveyResponse{}
		if err := cursor.All(ctx, &responses); err != nil {
			cursor.Close(ctx)
			return nil, err
		}
		return responses, nil
	}

	return nil, ErrNoCollectionFound
}
