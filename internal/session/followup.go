package session

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// runFollowUp holds a question-answer sub-session grounded on the last
// object recognition. The recognition context never changes across turns.
// Saying exit ends only the sub-session, not the outer loop.
func (s *session) runFollowUp(ctx context.Context, recognitionContext string) {
	s.voice.Speak("You can ask follow-up questions or say 'exit' to end.")

	for {
		if ctx.Err() != nil {
			return
		}

		question, err := s.voice.Listen(ctx)
		if err != nil || strings.TrimSpace(question) == "" {
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"error": err.Error(),
				}).Warn("Follow-up: listen failed")
			}
			s.voice.Speak("No valid input detected. Please try again or say 'exit' to end.")
			continue
		}

		if strings.Contains(strings.ToLower(question), "exit") {
			s.voice.Speak("Exiting follow-up session.")
			return
		}

		answer, err := s.objects.Answer(ctx, question, recognitionContext)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Follow-up: answer failed")
			continue
		}
		s.voice.Speak(answer)
	}
}
