package ocr

import (
	"context"
	"errors"

	"ProjectAEye/pkg/camera"
	"ProjectAEye/pkg/groq"
	"ProjectAEye/pkg/voice"

	"github.com/sirupsen/logrus"
)

var ErrNoFrame = errors.New("could not fetch frame from camera")

type ITextService interface {
	// Extract captures a frame, transcribes any printed text in it, speaks
	// the transcription, and returns it. A "no text" transcription is a
	// valid result, not an error.
	Extract(ctx context.Context) (string, error)
}

type textService struct {
	log    *logrus.Logger
	camera camera.ICapture
	groq   groq.IGroq
	voice  voice.IVoice
}

func New(log *logrus.Logger, cam camera.ICapture, g groq.IGroq, v voice.IVoice) ITextService {
	return &textService{
		log:    log,
		camera: cam,
		groq:   g,
		voice:  v,
	}
}
