package objects

import (
	"context"
	"errors"

	"ProjectAEye/pkg/camera"
	"ProjectAEye/pkg/gemini"
	"ProjectAEye/pkg/voice"

	"github.com/sirupsen/logrus"
)

var ErrNoFrame = errors.New("could not fetch frame from camera")

// Fixed answers for the follow-up responder. Both are valid spoken results,
// not errors: the sub-session keeps running after either one.
const (
	apologyNoContext = "There is no context available to respond to your question."
	apologyModelFail = "Sorry, I couldn't process your request."
)

type IObjectService interface {
	// Recognize captures a frame, identifies the held object, speaks the
	// result itself, and returns it as the follow-up context.
	Recognize(ctx context.Context) (string, error)

	// Answer responds to a follow-up question grounded on the last
	// recognition result.
	Answer(ctx context.Context, question, recognitionContext string) (string, error)
}

type objectService struct {
	log    *logrus.Logger
	camera camera.ICapture
	gemini gemini.IGemini
	voice  voice.IVoice
}

func New(log *logrus.Logger, cam camera.ICapture, gem gemini.IGemini, v voice.IVoice) IObjectService {
	return &objectService{
		log:    log,
		camera: cam,
		gemini: gem,
		voice:  v,
	}
}
