package faces

import (
	"context"
	"errors"
	"io"

	"ProjectAEye/pkg/s3"
	"ProjectAEye/pkg/utils"
	"ProjectAEye/pkg/voice"

	"ProjectAEye/pkg/camera"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoFrame = errors.New("could not fetch frame from camera")
	ErrNoFace  = errors.New("no face detected in frame")
	ErrNoName  = errors.New("could not obtain a name for the face")
)

type IFaceService interface {
	// Register captures a frame, verifies a face is present, asks for the
	// person's name, saves the image, and records the registration.
	// Returns the registered name.
	Register(ctx context.Context) (string, error)

	// Registered lists the distinct names in the face log.
	Registered() ([]string, error)

	// Delete removes every registration for name, including saved images.
	Delete(name string) error
}

type faceService struct {
	log       *logrus.Logger
	camera    camera.ICapture
	detector  IFaceDetector
	faceLog   IFaceLog
	voice     voice.IVoice
	s3        s3.ItfS3
	utils     utils.IUtils
	outputDir string

	// nameInput is the fallback source for the person's name when the
	// voice gateway returns nothing. Defaults to os.Stdin via the ctor.
	nameInput io.Reader
}

func New(log *logrus.Logger, cam camera.ICapture, detector IFaceDetector, faceLog IFaceLog, v voice.IVoice, s3c s3.ItfS3, u utils.IUtils, outputDir string, nameInput io.Reader) IFaceService {
	return &faceService{
		log:       log,
		camera:    cam,
		detector:  detector,
		faceLog:   faceLog,
		voice:     v,
		s3:        s3c,
		utils:     u,
		outputDir: outputDir,
		nameInput: nameInput,
	}
}
