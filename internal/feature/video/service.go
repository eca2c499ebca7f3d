package video

import (
	"context"
	"errors"

	"ProjectAEye/pkg/camera"
	"ProjectAEye/pkg/gemini"
	"ProjectAEye/pkg/utils"

	"github.com/sirupsen/logrus"
)

var ErrNoFrames = errors.New("no frames were captured")

// IVideoService records frames from the camera at a fixed interval and
// renders a narrated PDF describing each one.
type IVideoService interface {
	Analyze(ctx context.Context, opts Options) (string, error)
}

// Options controls one analysis run.
type Options struct {
	// IntervalSeconds between captured frames.
	IntervalSeconds int

	// FrameDir receives the captured frame files.
	FrameDir string

	// OutputPDF is the path of the rendered narration.
	OutputPDF string
}

type videoService struct {
	log    *logrus.Logger
	camera camera.ICapture
	gemini gemini.IGemini
	utils  utils.IUtils
}

func New(log *logrus.Logger, cam camera.ICapture, gem gemini.IGemini, u utils.IUtils) IVideoService {
	return &videoService{
		log:    log,
		camera: cam,
		gemini: gem,
		utils:  u,
	}
}
