package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"jobfluence/api/internal/models"
)

var ErrEmptyJobDescription = errors.New("job description is required")

type SimilarityScorer interface {
	Score(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, error)
}

type similarityScorer struct {
	embedder     Embedder
	chunker      TextChunker
	cache        EmbeddingCache
	maxChunkSize int
	log          *zap.Logger
}

// NewSimilarityScorer builds a scorer around a shared embedder. cache may be
// nil; when set, only job description embeddings are cached.
func NewSimilarityScorer(embedder Embedder, cache EmbeddingCache, maxChunkSize int, log *zap.Logger) SimilarityScorer {
	return &similarityScorer{
		embedder:     embedder,
		chunker:      NewTextChunker(),
		cache:        cache,
		maxChunkSize: maxChunkSize,
		log:          log,
	}
}

// Score implements SimilarityScorer.
func (s *similarityScorer) Score(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyJobDescription
	}

	resumeEmbedding, err := s.embed(ctx, resumeText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume: %w", err)
	}

	jobEmbedding, err := s.embedJobDescription(ctx, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description: %w", err)
	}

	similarity, err := CosineSimilarity(resumeEmbedding, jobEmbedding)
	if err != nil {
		return nil, err
	}

	return &models.MatchResult{Percentage: ToPercentage(similarity)}, nil
}

func (s *similarityScorer) embedJobDescription(ctx context.Context, text string) ([]float32, error) {
	if s.cache == nil {
		return s.embed(ctx, text)
	}

	key := EmbeddingCacheKey(s.embedder.EmbedModel(), text)

	cached, ok, err := s.cache.Lookup(ctx, key)
	if err != nil {
		s.log.Warn("embedding cache lookup failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return cached, nil
	}

	embedding, err := s.embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Store(ctx, key, s.embedder.EmbedModel(), embedding); err != nil {
		s.log.Warn("embedding cache store failed", zap.String("key", key), zap.Error(err))
	}

	return embedding, nil
}

// embed returns one vector for text of any length. Long text is chunked and
// the chunk vectors are averaged, weighted by chunk length in runes.
func (s *similarityScorer) embed(ctx context.Context, text string) ([]float32, error) {
	chunks := s.chunker.ChunkText(text, s.maxChunkSize)
	if len(chunks) == 0 {
		return nil, errors.New("no text to embed")
	}

	if len(chunks) == 1 {
		return s.embedder.GenerateEmbedding(ctx, chunks[0])
	}

	var sum []float64
	var totalWeight float64

	for i, chunk := range chunks {
		vec, err := s.embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}

		if sum == nil {
			sum = make([]float64, len(vec))
		} else if len(vec) != len(sum) {
			return nil, fmt.Errorf("chunk %d/%d: embedding has %d dimensions, expected %d", i+1, len(chunks), len(vec), len(sum))
		}

		weight := float64(utf8.RuneCountInString(chunk))
		for j, v := range vec {
			sum[j] += float64(v) * weight
		}
		totalWeight += weight
	}

	mean := make([]float32, len(sum))
	for j, v := range sum {
		mean[j] = float32(v / totalWeight)
	}

	s.log.Debug("averaged chunk embeddings", zap.Int("chunks", len(chunks)))

	return mean, nil
}

// CosineSimilarity returns the cosine of the angle between a and b.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimensions differ: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, errors.New("cannot compare zero-length embedding")
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// ToPercentage maps a cosine similarity to [0, 100] with two decimals.
// Negative similarity is reported as 0.
func ToPercentage(similarity float64) float64 {
	pct := math.Round(similarity*100*100) / 100
	return math.Max(0, math.Min(100, pct))
}
