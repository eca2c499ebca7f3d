package scene

import (
	"context"
	"errors"

	"ProjectAEye/pkg/camera"
	"ProjectAEye/pkg/gemini"

	"github.com/sirupsen/logrus"
)

var ErrNoFrame = errors.New("could not fetch frame from camera")

type ISceneService interface {
	Describe(ctx context.Context) (string, error)
}

type sceneService struct {
	log    *logrus.Logger
	camera camera.ICapture
	gemini gemini.IGemini
}

func New(log *logrus.Logger, cam camera.ICapture, gem gemini.IGemini) ISceneService {
	return &sceneService{
		log:    log,
		camera: cam,
		gemini: gem,
	}
}
