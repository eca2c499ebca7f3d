package voice

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// IVoice is the gateway between the session loop and the user's ears and
// voice. Listen blocks for one fixed-duration capture-and-transcribe cycle;
// an empty transcript with a nil error means silence. Speak is synchronous
// and best-effort: it logs failures instead of returning them so a broken
// speaker never kills the session.
type IVoice interface {
	Listen(ctx context.Context) (string, error)
	Speak(text string)
}

type gateway struct {
	log         *logrus.Logger
	recorder    IRecorder
	transcriber ITranscriber
	synth       ISynthesizer
}

func New(log *logrus.Logger, recorder IRecorder, transcriber ITranscriber, synth ISynthesizer) IVoice {
	return &gateway{
		log:         log,
		recorder:    recorder,
		transcriber: transcriber,
		synth:       synth,
	}
}

// NewFromEnv wires the default gateway: portaudio recorder, Whisper
// transcription, and ElevenLabs synthesis when configured with espeak-ng as
// the offline fallback.
func NewFromEnv(log *logrus.Logger, durationSeconds, sampleRate int) (IVoice, error) {
	recorder, err := NewRecorder(durationSeconds, sampleRate)
	if err != nil {
		return nil, err
	}

	transcriber, err := NewTranscriptionService()
	if err != nil {
		return nil, err
	}

	var synth ISynthesizer
	elevenKey := os.Getenv("ELEVENLABS_API_KEY")
	if elevenKey != "" && !strings.HasPrefix(elevenKey, "Enter ") {
		synth = NewChainSynthesizer(
			NewTTSService(elevenKey, os.Getenv("ELEVENLABS_VOICE_ID")),
			NewEspeakSynthesizer(),
		)
	} else {
		synth = NewEspeakSynthesizer()
	}

	return New(log, recorder, transcriber, synth), nil
}

func (g *gateway) Listen(ctx context.Context) (string, error) {
	wavPath, err := g.recorder.RecordToFile(ctx)
	if err != nil {
		return "", err
	}
	defer os.Remove(wavPath)

	transcript, err := g.transcriber.TranscribeAudio(ctx, wavPath)
	if err != nil {
		return "", err
	}

	return transcript, nil
}

// Close releases the audio capture device.
func (g *gateway) Close() {
	if g.recorder != nil {
		g.recorder.Close()
	}
}

func (g *gateway) Speak(text string) {
	if text == "" {
		return
	}

	if err := g.synth.Say(text); err != nil {
		g.log.WithFields(logrus.Fields{
			"error": err.Error(),
			"text":  text,
		}).Error("Failed to synthesize speech")
	}
}
