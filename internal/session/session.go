package session

import (
	"context"
	"errors"

	"ProjectAEye/internal/entity"
	"ProjectAEye/internal/feature/emergency"
	"ProjectAEye/internal/feature/faces"
	"ProjectAEye/internal/feature/navigation"
	"ProjectAEye/internal/feature/objects"
	"ProjectAEye/internal/feature/ocr"
	"ProjectAEye/internal/feature/scene"
	"ProjectAEye/pkg/servo"
	"ProjectAEye/pkg/voice"

	"github.com/sirupsen/logrus"
)

// Camera angles per category. Categories absent from the map leave the
// camera where it is.
var servoAngles = map[Category]int{
	CategoryScene:      115,
	CategoryOCR:        115,
	CategoryNavigation: 90,
	CategoryFaces:      90,
}

type ISession interface {
	Run(ctx context.Context) error
}

type session struct {
	log   *logrus.Logger
	voice voice.IVoice
	servo servo.IServo

	scene      scene.ISceneService
	objects    objects.IObjectService
	ocr        ocr.ITextService
	emergency  emergency.IEmergencyService
	navigation navigation.INavigationService
	faces      faces.IFaceService

	state entity.SessionState
}

func New(
	log *logrus.Logger,
	v voice.IVoice,
	sv servo.IServo,
	sc scene.ISceneService,
	ob objects.IObjectService,
	tx ocr.ITextService,
	em emergency.IEmergencyService,
	nav navigation.INavigationService,
	fc faces.IFaceService,
) ISession {
	return &session{
		log:        log,
		voice:      v,
		servo:      sv,
		scene:      sc,
		objects:    ob,
		ocr:        tx,
		emergency:  em,
		navigation: nav,
		faces:      fc,
		state:      entity.StateListening,
	}
}

// Run drives the listen-dispatch loop until the user says exit or the
// context is cancelled. The exit check runs after dispatch, so an utterance
// like "describe the scene and exit" is served before the session ends.
func (s *session) Run(ctx context.Context) error {
	s.voice.Speak("Start to speak")

	for {
		if err := ctx.Err(); err != nil {
			s.state = entity.StateTerminated
			return err
		}

		s.state = entity.StateListening
		utterance, err := s.voice.Listen(ctx)
		if err != nil || utterance == "" {
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"error": err.Error(),
				}).Warn("Session: listen failed")
			}
			s.voice.Speak("No Input")
			continue
		}

		s.log.WithFields(logrus.Fields{
			"utterance": utterance,
		}).Info("Session: heard utterance")

		s.state = entity.StateDispatching
		for _, category := range Match(utterance) {
			s.dispatch(ctx, category)
		}

		if IsExit(utterance) {
			s.voice.Speak("Exiting now.")
			s.state = entity.StateTerminated
			return nil
		}
	}
}

func (s *session) dispatch(ctx context.Context, category Category) {
	s.positionCamera(ctx, category)

	switch category {
	case CategoryScene:
		narrative, err := s.scene.Describe(ctx)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Session: scene description failed")
			s.voice.Speak("Failed to analyze scene")
			return
		}
		s.voice.Speak(narrative)

	case CategoryObjects:
		recognition, err := s.objects.Recognize(ctx)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Session: object recognition failed")
			s.voice.Speak("Failed to recognize object")
			return
		}
		s.state = entity.StateFollowUp
		s.runFollowUp(ctx, recognition)

	case CategoryOCR:
		if _, err := s.ocr.Extract(ctx); err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Session: text extraction failed")
			s.voice.Speak("Failed to extract text from image")
		}

	case CategorySOS:
		if _, err := s.emergency.SendSOS(ctx); err != nil {
			s.voice.Speak("Failed to send SOS message")
			return
		}
		s.voice.Speak("SOS message sent successfully")

	case CategoryNavigation:
		if _, err := s.navigation.AnalyzeEnvironment(ctx); err != nil {
			s.voice.Speak("Failed to analyze environment for navigation")
		}

	case CategoryFaces:
		name, err := s.faces.Register(ctx)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Session: face registration failed")
			s.voice.Speak("Face registration failed.")
			return
		}
		s.voice.Speak("Face registered as " + name)
	}
}

// positionCamera points the camera at the angle suited to the category.
// Positioning failures never block the feature.
func (s *session) positionCamera(ctx context.Context, category Category) {
	angle, ok := servoAngles[category]
	if !ok || s.servo == nil {
		return
	}
	if err := s.servo.SetAngle(ctx, angle); err != nil && !errors.Is(err, context.Canceled) {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
			"angle": angle,
		}).Warn("Session: servo positioning failed")
	}
}
