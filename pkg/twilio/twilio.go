package twilio

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// IAlertSender delivers an SMS to the configured emergency contact and
// returns the provider-assigned message identifier.
type IAlertSender interface {
	SendSMS(ctx context.Context, body string) (string, error)
}

type alertSender struct {
	client *twilio.RestClient
	from   string
	to     string
}

func New() (IAlertSender, error) {
	sid := os.Getenv("TWILIO_ACCOUNT_SID")
	token := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	to := os.Getenv("EMERGENCY_PHONE_NUMBER")

	for _, v := range []string{sid, token, from, to} {
		if v == "" || strings.HasPrefix(v, "Enter ") {
			return nil, errors.New("twilio credentials are not configured")
		}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})

	return &alertSender{
		client: client,
		from:   from,
		to:     to,
	}, nil
}

func (a *alertSender) SendSMS(_ context.Context, body string) (string, error) {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(a.from)
	params.SetTo(a.to)
	params.SetBody(body)

	msg, err := a.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}

	if msg.Sid == nil || *msg.Sid == "" {
		return "", errors.New("twilio returned no message SID")
	}

	return *msg.Sid, nil
}
