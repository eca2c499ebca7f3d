package emergency

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *emergencyService) SendSOS(ctx context.Context) (string, error) {
	if s.alerts == nil {
		return "", ErrSenderUnconfigured
	}

	locationText := "Location unavailable"
	loc, err := s.geo.Locate(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("SOS: could not determine location, sending alert without it")
	} else {
		locationText = loc.Describe()
	}

	body := "SOS Alert\nPlease send help!\nLocation: " + locationText

	sid, err := s.alerts.SendSMS(ctx, body)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("SOS: failed to send alert")
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"sid": sid,
	}).Info("SOS: alert delivered")

	return sid, nil
}
