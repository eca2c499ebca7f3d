package entity

// DocumentChunk is one embedded passage of an ingested document.
type DocumentChunk struct {
	ID         string    `db:"id"`
	Collection string    `db:"collection"`
	Seq        int       `db:"seq"`
	Content    string    `db:"content"`
	Embedding  []float32 `db:"-"`
}
