package navigation

import (
	"context"
	"errors"

	"ProjectAEye/pkg/camera"
	"ProjectAEye/pkg/gemini"
	"ProjectAEye/pkg/voice"

	"github.com/sirupsen/logrus"
)

var ErrNoFrame = errors.New("could not fetch frame from camera")

type INavigationService interface {
	// AnalyzeEnvironment captures the scene ahead, lists the objects in it
	// as candidate destinations, and speaks the listing.
	AnalyzeEnvironment(ctx context.Context) (string, error)

	// Guide captures the scene ahead and speaks step-by-step directions
	// toward the named destination.
	Guide(ctx context.Context, destination string) (string, error)
}

type navigationService struct {
	log    *logrus.Logger
	camera camera.ICapture
	gemini gemini.IGemini
	voice  voice.IVoice
}

func New(log *logrus.Logger, cam camera.ICapture, gem gemini.IGemini, v voice.IVoice) INavigationService {
	return &navigationService{
		log:    log,
		camera: cam,
		gemini: gem,
		voice:  v,
	}
}
