package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ProjectAEye/internal/feature/docs"
	"ProjectAEye/internal/feature/emergency"
	"ProjectAEye/internal/feature/faces"
	"ProjectAEye/internal/feature/navigation"
	"ProjectAEye/internal/feature/objects"
	"ProjectAEye/internal/feature/ocr"
	"ProjectAEye/internal/feature/scene"
	"ProjectAEye/internal/feature/video"
	"ProjectAEye/internal/session"
	"ProjectAEye/pkg/camera"
	"ProjectAEye/pkg/gemini"
	"ProjectAEye/pkg/geo"
	"ProjectAEye/pkg/groq"
	"ProjectAEye/pkg/s3"
	"ProjectAEye/pkg/servo"
	"ProjectAEye/pkg/twilio"
	"ProjectAEye/pkg/utils"
	"ProjectAEye/pkg/voice"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type AssistantOption func(*Assistant) error

// Assistant owns every client and feature service and drives the voice
// session. Options construct the pieces; RegisterFeatures wires them.
type Assistant struct {
	log       *logrus.Logger
	cfg       *Config
	validator *validator.Validate

	voiceGateway voice.IVoice
	camera       camera.ICapture
	servo        servo.IServo
	geminiClient gemini.IGemini
	groqClient   groq.IGroq
	alertSender  twilio.IAlertSender
	geolocator   geo.IGeo
	s3Client     s3.ItfS3
	utils        utils.IUtils

	sceneService      scene.ISceneService
	objectService     objects.IObjectService
	textService       ocr.ITextService
	emergencyService  emergency.IEmergencyService
	navigationService navigation.INavigationService
	faceService       faces.IFaceService
	videoService      video.IVideoService

	session session.ISession
}

func NewAssistant(options ...AssistantOption) (*Assistant, error) {
	assistant := &Assistant{}

	for _, option := range options {
		if err := option(assistant); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if assistant.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if assistant.cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	return assistant, nil
}

func WithLogger(logger *logrus.Logger) AssistantOption {
	return func(a *Assistant) error {
		a.log = logger
		return nil
	}
}

func WithConfig(cfg *Config) AssistantOption {
	return func(a *Assistant) error {
		a.cfg = cfg
		return nil
	}
}

func WithValidator(validator *validator.Validate) AssistantOption {
	return func(a *Assistant) error {
		a.validator = validator
		return nil
	}
}

func WithVoiceGateway() AssistantOption {
	return func(a *Assistant) error {
		if a.cfg == nil {
			return fmt.Errorf("config must be initialized before the voice gateway")
		}
		gateway, err := voice.NewFromEnv(a.log, a.cfg.RecordingDuration, a.cfg.SampleRate)
		if err != nil {
			if a.log != nil {
				a.log.Errorf("Failed to initialize voice gateway: %v", err)
			}
			return fmt.Errorf("failed to create voice gateway: %w", err)
		}
		a.voiceGateway = gateway
		return nil
	}
}

func WithCamera() AssistantOption {
	return func(a *Assistant) error {
		if a.cfg == nil {
			return fmt.Errorf("config must be initialized before the camera")
		}
		a.camera = camera.New(a.log, a.cfg.CamURL, camera.NewFFmpegGrabber(a.cfg.CameraDevice))
		return nil
	}
}

func WithServo() AssistantOption {
	return func(a *Assistant) error {
		if a.cfg == nil {
			return fmt.Errorf("config must be initialized before the servo")
		}
		a.servo = servo.New(a.log, a.cfg.ServoURL)
		return nil
	}
}

func WithGeminiClient() AssistantOption {
	return func(a *Assistant) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if a.log != nil {
				a.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		a.geminiClient = client
		return nil
	}
}

func WithGroqClient() AssistantOption {
	return func(a *Assistant) error {
		client, err := groq.NewGroqClient()
		if err != nil {
			if a.log != nil {
				a.log.Errorf("Failed to create Groq client: %v", err)
			}
			return fmt.Errorf("failed to create Groq client: %w", err)
		}
		a.groqClient = client
		return nil
	}
}

func WithAlertSender() AssistantOption {
	return func(a *Assistant) error {
		client, err := twilio.New()
		if err != nil {
			if a.log != nil {
				a.log.Warnf("Alert sender not configured, SOS disabled: %v", err)
			}
			return nil
		}
		a.alertSender = client
		return nil
	}
}

func WithGeolocator() AssistantOption {
	return func(a *Assistant) error {
		a.geolocator = geo.New()
		return nil
	}
}

func WithS3Client() AssistantOption {
	return func(a *Assistant) error {
		client, err := s3.New()
		if err != nil {
			if a.log != nil {
				a.log.Warnf("S3 client not configured, cloud backup disabled: %v", err)
			}
			return nil
		}
		a.s3Client = client
		return nil
	}
}

func WithUtils() AssistantOption {
	return func(a *Assistant) error {
		a.utils = utils.New()
		return nil
	}
}

func (a *Assistant) RegisterFeatures() error {
	// Scene Description
	a.sceneService = scene.New(a.log, a.camera, a.geminiClient)

	// Object Recognition
	a.objectService = objects.New(a.log, a.camera, a.geminiClient, a.voiceGateway)

	// Text Extraction
	a.textService = ocr.New(a.log, a.camera, a.groqClient, a.voiceGateway)

	// Emergency
	a.emergencyService = emergency.New(a.log, a.geolocator, a.alertSender)

	// Navigation
	a.navigationService = navigation.New(a.log, a.camera, a.geminiClient, a.voiceGateway)

	// Face Registration
	detector, err := faces.NewDetector(a.cfg.FaceCascadePath, a.cfg.FaceMinSize, a.cfg.FaceScaleFactor, a.cfg.FaceQualityScore)
	if err != nil {
		return fmt.Errorf("failed to load face detector: %w", err)
	}
	faceLog := faces.NewFaceLog(filepath.Join(a.cfg.FaceOutputDir, "face_log.txt"))
	a.faceService = faces.New(a.log, a.camera, detector, faceLog, a.voiceGateway, a.s3Client, a.utils, a.cfg.FaceOutputDir, os.Stdin)

	a.videoService = a.NewVideoService()

	a.session = session.New(a.log, a.voiceGateway, a.servo,
		a.sceneService, a.objectService, a.textService,
		a.emergencyService, a.navigationService, a.faceService)

	return nil
}

// Run starts the voice session loop.
func (a *Assistant) Run(ctx context.Context) error {
	if a.session == nil {
		return fmt.Errorf("features are not registered")
	}
	return a.session.Run(ctx)
}

// NewVideoService builds the batch video analyzer. The video run mode uses
// it without the rest of the feature wiring.
func (a *Assistant) NewVideoService() video.IVideoService {
	return video.New(a.log, a.camera, a.geminiClient, a.utils)
}

// NewDocumentService builds the document Q&A service against the given
// chunk store.
func (a *Assistant) NewDocumentService(dsn string) (docs.IDocumentService, docs.IChunkRepository, error) {
	repo, err := docs.NewChunkRepository(dsn)
	if err != nil {
		return nil, nil, err
	}
	return docs.New(a.log, a.geminiClient, repo, a.utils), repo, nil
}

// Close releases every client the assistant owns.
func (a *Assistant) Close() {
	if a.geminiClient != nil {
		a.geminiClient.Close()
	}
	if a.voiceGateway != nil {
		if closer, ok := a.voiceGateway.(interface{ Close() }); ok {
			closer.Close()
		}
	}
}
