package objects

import (
	"context"

	"github.com/sirupsen/logrus"
)

const recognitionPrompt = "Tell me about the object I am holding. What is this? Provide both online and offline purchase suggestions. Describe as much as possible within 3 lines. Do not use special symbols like (#, *, etc)."

func (s *objectService) Recognize(ctx context.Context) (string, error) {
	frame, err := s.camera.Frame(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Object Recognition: failed to capture frame")
		return "", ErrNoFrame
	}

	result, err := s.gemini.AnalyzeImage(ctx, frame, recognitionPrompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Object Recognition: model analysis failed")
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"length": len(result),
	}).Info("Object Recognition: object described")

	s.voice.Speak(result)
	return result, nil
}

func (s *objectService) Answer(ctx context.Context, question, recognitionContext string) (string, error) {
	if recognitionContext == "" {
		return apologyNoContext, nil
	}

	reply, err := s.gemini.GenerateText(ctx, recognitionContext+"\nUser: "+question)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Object Recognition: follow-up generation failed")
		return apologyModelFail, nil
	}

	return reply, nil
}
