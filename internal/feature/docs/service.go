package docs

import (
	"context"
	"errors"
	"io"

	"ProjectAEye/pkg/gemini"
	"ProjectAEye/pkg/utils"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyDocument = errors.New("document produced no text chunks")
	ErrNoChunks      = errors.New("collection has no stored chunks")
)

type IDocumentService interface {
	// Ingest chunks a PDF, embeds every chunk, and stores them under a new
	// timestamped collection. Returns the collection name.
	Ingest(ctx context.Context, pdfPath string) (string, error)

	// Answer retrieves the chunks most similar to the question and asks
	// the model to answer from them.
	Answer(ctx context.Context, collection, question string) (string, error)

	// InteractiveQA runs a read-answer loop over in/out until the user
	// types exit or the context ends.
	InteractiveQA(ctx context.Context, collection string, in io.Reader, out io.Writer) error
}

type documentService struct {
	log    *logrus.Logger
	gemini gemini.IGemini
	repo   IChunkRepository
	utils  utils.IUtils
}

func New(log *logrus.Logger, gem gemini.IGemini, repo IChunkRepository, u utils.IUtils) IDocumentService {
	return &documentService{
		log:    log,
		gemini: gem,
		repo:   repo,
		utils:  u,
	}
}
