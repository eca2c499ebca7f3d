package docs

import (
	"context"
	"fmt"

	"ProjectAEye/internal/entity"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	_ "modernc.org/sqlite"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const schema = `
CREATE TABLE IF NOT EXISTS document_chunks (
	id         TEXT PRIMARY KEY,
	collection TEXT NOT NULL,
	seq        INTEGER NOT NULL,
	content    TEXT NOT NULL,
	embedding  BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_document_chunks_collection ON document_chunks (collection);
`

type IChunkRepository interface {
	Save(ctx context.Context, chunk entity.DocumentChunk) error
	ByCollection(ctx context.Context, collection string) ([]entity.DocumentChunk, error)
	Collections(ctx context.Context) ([]string, error)
	Close() error
}

type chunkRepository struct {
	db *sqlx.DB
}

func NewChunkRepository(dsn string) (IChunkRepository, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open chunk store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate chunk store: %w", err)
	}
	return &chunkRepository{db: db}, nil
}

func (r *chunkRepository) Save(ctx context.Context, chunk entity.DocumentChunk) error {
	blob, err := json.Marshal(chunk.Embedding)
	if err != nil {
		return fmt.Errorf("encode embedding: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO document_chunks (id, collection, seq, content, embedding) VALUES (?, ?, ?, ?, ?)`,
		chunk.ID, chunk.Collection, chunk.Seq, chunk.Content, blob)
	if err != nil {
		return fmt.Errorf("save chunk: %w", err)
	}
	return nil
}

func (r *chunkRepository) ByCollection(ctx context.Context, collection string) ([]entity.DocumentChunk, error) {
	type row struct {
		entity.DocumentChunk
		Blob []byte `db:"embedding"`
	}

	var rows []row
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, collection, seq, content, embedding FROM document_chunks WHERE collection = ? ORDER BY seq`,
		collection)
	if err != nil {
		return nil, fmt.Errorf("load chunks: %w", err)
	}

	chunks := make([]entity.DocumentChunk, 0, len(rows))
	for _, rw := range rows {
		chunk := rw.DocumentChunk
		if err := json.Unmarshal(rw.Blob, &chunk.Embedding); err != nil {
			return nil, fmt.Errorf("decode embedding for %s: %w", chunk.ID, err)
		}
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

func (r *chunkRepository) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names,
		`SELECT DISTINCT collection FROM document_chunks ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func (r *chunkRepository) Close() error {
	return r.db.Close()
}
