package servo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// IServo points the pan/tilt viewing servo. Callers treat SetAngle as
// best-effort: a failed move never blocks a feature call.
type IServo interface {
	SetAngle(ctx context.Context, degrees int) error
}

type servoClient struct {
	log     *logrus.Logger
	baseURL string
	client  *http.Client
}

func New(log *logrus.Logger, baseURL string) IServo {
	return &servoClient{
		log:     log,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *servoClient) SetAngle(ctx context.Context, degrees int) error {
	url := fmt.Sprintf("%s/servo_angle?value=%d", s.baseURL, degrees)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("servo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("servo returned %s for angle %d", resp.Status, degrees)
	}

	s.log.WithFields(logrus.Fields{
		"angle": degrees,
	}).Debug("Servo moved")

	return nil
}
