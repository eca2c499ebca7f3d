package ocr

import (
	"context"

	"github.com/sirupsen/logrus"
)

func (s *textService) Extract(ctx context.Context) (string, error) {
	frame, err := s.camera.Frame(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Text Extraction: failed to capture frame")
		return "", ErrNoFrame
	}

	text, err := s.groq.ExtractText(ctx, frame)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Text Extraction: vision model failed")
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"length": len(text),
	}).Info("Text Extraction: text transcribed")

	s.voice.Speak(text)
	return text, nil
}
