package docs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"ProjectAEye/internal/entity"

	"github.com/sirupsen/logrus"
)

// topK chunks are handed to the model as grounding for each answer.
const topK = 3

const answerPromptFormat = "You are a helpful conversational assistant. Answer the question using only the document excerpts below. If the excerpts do not contain the answer, say you don't know.\n\nExcerpts:\n%s\n\nQuestion: %s"

func (s *documentService) Ingest(ctx context.Context, pdfPath string) (string, error) {
	texts, err := ExtractChunks(pdfPath)
	if err != nil {
		return "", err
	}
	if len(texts) == 0 {
		return "", ErrEmptyDocument
	}

	collection := time.Now().Format("2006-01-02_15-04-05")

	for seq, text := range texts {
		embedding, err := s.gemini.EmbedText(ctx, text)
		if err != nil {
			return "", fmt.Errorf("embed chunk %d: %w", seq, err)
		}
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return "", fmt.Errorf("mint chunk id: %w", err)
		}
		chunk := entity.DocumentChunk{
			ID:         id,
			Collection: collection,
			Seq:        seq,
			Content:    text,
			Embedding:  embedding,
		}
		if err := s.repo.Save(ctx, chunk); err != nil {
			return "", err
		}
	}

	s.log.WithFields(logrus.Fields{
		"collection": collection,
		"chunks":     len(texts),
		"source":     pdfPath,
	}).Info("Document Analysis: document ingested")

	return collection, nil
}

func (s *documentService) Answer(ctx context.Context, collection, question string) (string, error) {
	chunks, err := s.repo.ByCollection(ctx, collection)
	if err != nil {
		return "", err
	}
	if len(chunks) == 0 {
		return "", ErrNoChunks
	}

	queryEmbedding, err := s.gemini.EmbedText(ctx, question)
	if err != nil {
		return "", fmt.Errorf("embed question: %w", err)
	}

	relevant := topChunks(chunks, queryEmbedding, topK)

	var excerpts strings.Builder
	for i, chunk := range relevant {
		fmt.Fprintf(&excerpts, "[%d] %s\n", i+1, chunk.Content)
	}

	return s.gemini.GenerateText(ctx, fmt.Sprintf(answerPromptFormat, excerpts.String(), question))
}

func (s *documentService) InteractiveQA(ctx context.Context, collection string, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "Ask a question about the document, or type 'exit' to quit.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if strings.EqualFold(question, "exit") {
			return nil
		}

		answer, err := s.Answer(ctx, collection, question)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Document Analysis: answer failed")
			fmt.Fprintln(out, "Sorry, I couldn't answer that question.")
			continue
		}
		fmt.Fprintln(out, answer)
	}
}

// topChunks ranks chunks by cosine similarity to the query embedding.
func topChunks(chunks []entity.DocumentChunk, query []float32, k int) []entity.DocumentChunk {
	type scored struct {
		chunk entity.DocumentChunk
		score float64
	}

	ranked := make([]scored, 0, len(chunks))
	for _, chunk := range chunks {
		ranked = append(ranked, scored{chunk, CosineSimilarity(query, chunk.Embedding)})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]entity.DocumentChunk, 0, k)
	for _, r := range ranked[:k] {
		out = append(out, r.chunk)
	}
	return out
}

// CosineSimilarity returns 0 for mismatched or zero-length vectors.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
