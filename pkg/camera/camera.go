package camera

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/jpeg"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ICapture fetches a single JPEG frame. The network camera is tried first;
// on any failure the local device is attempted before giving up.
type ICapture interface {
	Frame(ctx context.Context) ([]byte, error)
}

// LocalGrabber captures one frame from a local camera device.
type LocalGrabber interface {
	Grab(ctx context.Context) ([]byte, error)
}

type provider struct {
	log    *logrus.Logger
	camURL string
	client *http.Client
	local  LocalGrabber
}

func New(log *logrus.Logger, camURL string, local LocalGrabber) ICapture {
	return &provider{
		log:    log,
		camURL: camURL,
		client: &http.Client{Timeout: 5 * time.Second},
		local:  local,
	}
}

func (p *provider) Frame(ctx context.Context) ([]byte, error) {
	frame, err := p.networkFrame(ctx)
	if err == nil {
		return frame, nil
	}

	p.log.WithFields(logrus.Fields{
		"cam_url": p.camURL,
		"error":   err.Error(),
	}).Warn("Network camera not available, using local camera")

	frame, localErr := p.local.Grab(ctx)
	if localErr != nil {
		return nil, fmt.Errorf("network camera: %v; local camera: %w", err, localErr)
	}

	return frame, nil
}

func (p *provider) networkFrame(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.camURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("camera endpoint returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if _, err := jpeg.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.New("camera endpoint returned a non-JPEG body")
	}

	return data, nil
}
