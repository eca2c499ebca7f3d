package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config carries the hardware and session settings for the assistant loop.
// Credentials for remote services are read by the client packages themselves.
type Config struct {
	CamURL       string `validate:"required,url"`
	ServoURL     string `validate:"required,url"`
	CameraDevice string `validate:"required"`

	RecordingDuration int `validate:"min=1,max=60"`
	SampleRate        int `validate:"min=8000,max=48000"`

	FaceOutputDir    string  `validate:"required"`
	FaceCascadePath  string  `validate:"required"`
	FaceMinSize      int     `validate:"min=20"`
	FaceScaleFactor  float64 `validate:"gt=1"`
	FaceQualityScore float64 `validate:"gte=0"`

	TwilioPhoneNumber    string
	EmergencyPhoneNumber string
}

func New() *Config {
	return &Config{
		CamURL:       Getenv("ESP32_CAM_URL", "http://192.168.168.232/cam-hi.jpg"),
		ServoURL:     Getenv("ESP32_SERVO_URL", "http://192.168.168.193"),
		CameraDevice: Getenv("CAMERA_DEVICE", "/dev/video0"),

		RecordingDuration: GetenvInt("RECORDING_DURATION", 5),
		SampleRate:        GetenvInt("SAMPLE_RATE", 16000),

		FaceOutputDir:    Getenv("FACE_OUTPUT_DIR", "known_image"),
		FaceCascadePath:  Getenv("FACE_CASCADE_PATH", "cascade/facefinder"),
		FaceMinSize:      GetenvInt("FACE_DETECTION_MIN_SIZE", 40),
		FaceScaleFactor:  GetenvFloat("FACE_DETECTION_SCALE_FACTOR", 1.2),
		FaceQualityScore: GetenvFloat("FACE_DETECTION_QUALITY", 5.0),

		TwilioPhoneNumber:    Getenv("TWILIO_PHONE_NUMBER", "Enter TWILIO_PHONE_NUMBER here"),
		EmergencyPhoneNumber: Getenv("EMERGENCY_PHONE_NUMBER", "Enter EMERGENCY_PHONE_NUMBER here"),
	}
}

func (c *Config) Validate(v *validator.Validate) error {
	return v.Struct(c)
}

func NewValidator() *validator.Validate {
	return validator.New()
}

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func GetenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// IsPlaceholder reports whether an env value still holds its unconfigured
// literal default, e.g. "Enter Gemini API Key here".
func IsPlaceholder(v string) bool {
	return v == "" || (strings.HasPrefix(v, "Enter ") && strings.HasSuffix(v, " here"))
}
