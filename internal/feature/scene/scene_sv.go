package scene

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

const describePrompt = "You are a describing assistant. Describe everything you see in the scene " +
	"within 3 lines. Be detailed but concise."

// Describe captures the current view and narrates it. The narrative is
// returned to the caller; the dispatcher decides whether to speak it.
func (s *sceneService) Describe(ctx context.Context) (string, error) {
	frame, err := s.camera.Frame(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to capture frame for scene description")
		return "", fmt.Errorf("%w: %v", ErrNoFrame, err)
	}

	description, err := s.gemini.AnalyzeImage(ctx, frame, describePrompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Scene analysis failed")
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"description": description,
	}).Info("Scene described")

	return description, nil
}
