package navigation

import (
	"context"

	"github.com/sirupsen/logrus"
)

const environmentPrompt = "You are a describing agent whose purpose is to give me objects in an environment which I will use as destinations. Just list me a set of objects and describe where they are. Do not use special symbols in the output."

const guidePrompt = "You are a navigation assistant. You are going to guide me to my destination. Make sure to be precise, assume that the image is what I am facing. Destination: "

func (s *navigationService) AnalyzeEnvironment(ctx context.Context) (string, error) {
	result, err := s.describe(ctx, environmentPrompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Navigation: environment analysis failed")
		return "", err
	}

	s.voice.Speak(result)
	return result, nil
}

func (s *navigationService) Guide(ctx context.Context, destination string) (string, error) {
	result, err := s.describe(ctx, guidePrompt+destination)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error":       err.Error(),
			"destination": destination,
		}).Error("Navigation: guidance failed")
		return "", err
	}

	s.voice.Speak(result)
	return result, nil
}

func (s *navigationService) describe(ctx context.Context, prompt string) (string, error) {
	frame, err := s.camera.Frame(ctx)
	if err != nil {
		return "", ErrNoFrame
	}
	return s.gemini.AnalyzeImage(ctx, frame, prompt)
}
