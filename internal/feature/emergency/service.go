package emergency

import (
	"errors"

	"ProjectAEye/pkg/geo"
	"ProjectAEye/pkg/twilio"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ErrSenderUnconfigured is returned when SOS credentials were never set.
var ErrSenderUnconfigured = errors.New("alert sender is not configured")

type IEmergencyService interface {
	// SendSOS composes an SOS message with the current location and sends
	// it to the configured emergency contact. Returns the provider message
	// id on success.
	SendSOS(ctx context.Context) (string, error)
}

type emergencyService struct {
	log    *logrus.Logger
	geo    geo.IGeo
	alerts twilio.IAlertSender
}

func New(log *logrus.Logger, g geo.IGeo, alerts twilio.IAlertSender) IEmergencyService {
	return &emergencyService{
		log:    log,
		geo:    g,
		alerts: alerts,
	}
}
