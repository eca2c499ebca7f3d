package docs

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"ProjectAEye/internal/entity"
)

func newTestRepository(t *testing.T) IChunkRepository {
	t.Helper()
	repo, err := NewChunkRepository(filepath.Join(t.TempDir(), "chunks.db"))
	if err != nil {
		t.Fatalf("NewChunkRepository() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestChunkRepositorySaveAndLoad(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	chunks := []entity.DocumentChunk{
		{ID: "01A", Collection: "2025-01-01_10-00-00", Seq: 0, Content: "first", Embedding: []float32{0.1, 0.2}},
		{ID: "01B", Collection: "2025-01-01_10-00-00", Seq: 1, Content: "second", Embedding: []float32{0.3, 0.4}},
	}
	for _, chunk := range chunks {
		if err := repo.Save(ctx, chunk); err != nil {
			t.Fatalf("Save(%s) error = %v", chunk.ID, err)
		}
	}

	got, err := repo.ByCollection(ctx, "2025-01-01_10-00-00")
	if err != nil {
		t.Fatalf("ByCollection() error = %v", err)
	}
	if !reflect.DeepEqual(got, chunks) {
		t.Errorf("ByCollection() = %v, want %v", got, chunks)
	}
}

func TestChunkRepositoryCollectionsAreIsolated(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Save(ctx, entity.DocumentChunk{ID: "a", Collection: "one", Content: "x", Embedding: []float32{1}}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, entity.DocumentChunk{ID: "b", Collection: "two", Content: "y", Embedding: []float32{1}}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ByCollection(ctx, "one")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("ByCollection(one) = %v, want only chunk a", got)
	}

	names, err := repo.Collections(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"one", "two"}; !reflect.DeepEqual(names, want) {
		t.Errorf("Collections() = %v, want %v", names, want)
	}
}
