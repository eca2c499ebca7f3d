package emergency

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ProjectAEye/pkg/geo"

	"github.com/sirupsen/logrus"
)

type fakeGeo struct {
	loc *geo.Location
	err error
}

func (f *fakeGeo) Locate(ctx context.Context) (*geo.Location, error) {
	return f.loc, f.err
}

type fakeAlerts struct {
	sid  string
	err  error
	body string
}

func (f *fakeAlerts) SendSMS(ctx context.Context, body string) (string, error) {
	f.body = body
	return f.sid, f.err
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(new(strings.Builder))
	return logger
}

func TestSendSOS(t *testing.T) {
	g := &fakeGeo{loc: &geo.Location{Loc: "-6.2,106.8", City: "Jakarta", Region: "Jakarta", Country: "ID"}}
	alerts := &fakeAlerts{sid: "SM123"}
	svc := New(newTestLogger(), g, alerts)

	sid, err := svc.SendSOS(context.Background())
	if err != nil {
		t.Fatalf("SendSOS() error = %v", err)
	}
	if sid != "SM123" {
		t.Errorf("SendSOS() = %q, want SM123", sid)
	}
	for _, want := range []string{"SOS Alert", "Please send help!", "Jakarta", "https://www.google.com/maps?q=-6.2,106.8"} {
		if !strings.Contains(alerts.body, want) {
			t.Errorf("alert body %q missing %q", alerts.body, want)
		}
	}
}

func TestSendSOSWithoutLocation(t *testing.T) {
	g := &fakeGeo{err: errors.New("no network")}
	alerts := &fakeAlerts{sid: "SM456"}
	svc := New(newTestLogger(), g, alerts)

	sid, err := svc.SendSOS(context.Background())
	if err != nil {
		t.Fatalf("SendSOS() error = %v, the alert must go out without a location", err)
	}
	if sid != "SM456" {
		t.Errorf("SendSOS() = %q", sid)
	}
	if !strings.Contains(alerts.body, "Location unavailable") {
		t.Errorf("alert body %q missing the location fallback", alerts.body)
	}
}

func TestSendSOSUnconfiguredSender(t *testing.T) {
	svc := New(newTestLogger(), &fakeGeo{loc: &geo.Location{}}, nil)

	if _, err := svc.SendSOS(context.Background()); !errors.Is(err, ErrSenderUnconfigured) {
		t.Fatalf("SendSOS() error = %v, want ErrSenderUnconfigured", err)
	}
}

func TestSendSOSDeliveryFailure(t *testing.T) {
	g := &fakeGeo{loc: &geo.Location{}}
	alerts := &fakeAlerts{err: errors.New("no signal")}
	svc := New(newTestLogger(), g, alerts)

	if _, err := svc.SendSOS(context.Background()); err == nil {
		t.Fatal("SendSOS() succeeded while delivery failed")
	}
}
