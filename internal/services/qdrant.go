package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

// EmbeddingCache stores job description embeddings keyed by a content hash.
// Implementations must not store the text itself.
type EmbeddingCache interface {
	Lookup(ctx context.Context, key string) ([]float32, bool, error)
	Store(ctx context.Context, key string, model string, embedding []float32) error
}

// embeddingNamespace scopes name-based cache keys to this service.
var embeddingNamespace = uuid.MustParse("6f1d3c52-4a7e-4b8e-9a57-2f6f0b1c9d10")

// EmbeddingCacheKey derives a stable point id from the model and the text.
func EmbeddingCacheKey(model, text string) string {
	return uuid.NewSHA1(embeddingNamespace, []byte(model+"\x00"+text)).String()
}

type QdrantService interface {
	EmbeddingCache
	InitCollection(ctx context.Context) error
}

// pointsClient is the part of *qdrant.Client the cache uses.
type pointsClient interface {
	CollectionExists(ctx context.Context, collectionName string) (bool, error)
	CreateCollection(ctx context.Context, request *qdrant.CreateCollection) error
	Get(ctx context.Context, request *qdrant.GetPoints) ([]*qdrant.RetrievedPoint, error)
	Upsert(ctx context.Context, request *qdrant.UpsertPoints) (*qdrant.UpdateResult, error)
}

type qdrantService struct {
	client         pointsClient
	collectionName string
	vectorSize     uint64
	log            *zap.Logger
}

func NewQdrantService(urlStr, apiKey, collectionName string, vectorSize uint64, log *zap.Logger) (QdrantService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return newQdrantService(client, collectionName, vectorSize, log), nil
}

func newQdrantService(client pointsClient, collectionName string, vectorSize uint64, log *zap.Logger) *qdrantService {
	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		log:            log,
	}
}

// InitCollection implements QdrantService.
func (q *qdrantService) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		q.log.Debug("qdrant collection already exists", zap.String("collection", q.collectionName))
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.log.Info("qdrant collection created", zap.String("collection", q.collectionName))
	return nil
}

// Lookup implements EmbeddingCache.
func (q *qdrantService) Lookup(ctx context.Context, key string) ([]float32, bool, error) {
	points, err := q.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: q.collectionName,
		Ids:            []*qdrant.PointId{qdrant.NewID(key)},
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get point: %w", err)
	}

	if len(points) == 0 {
		return nil, false, nil
	}

	vector := points[0].GetVectors().GetVector()
	values := vector.GetDense().GetData()
	if len(values) == 0 {
		values = vector.GetData()
	}

	// A point written for another model or collection size is a miss.
	if uint64(len(values)) != q.vectorSize {
		q.log.Debug("cached embedding has wrong size", zap.String("key", key), zap.Int("dims", len(values)))
		return nil, false, nil
	}

	return values, true, nil
}

// Store implements EmbeddingCache.
func (q *qdrantService) Store(ctx context.Context, key string, model string, embedding []float32) error {
	if uint64(len(embedding)) != q.vectorSize {
		return fmt.Errorf("embedding has %d dimensions, collection expects %d", len(embedding), q.vectorSize)
	}

	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(key),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			"model": model,
			"kind":  "job_description",
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}
