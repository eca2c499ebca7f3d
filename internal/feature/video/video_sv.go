package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ProjectAEye/internal/entity"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
)

const framePrompt = "You are describing a video frame to a blind person. Be as vivid and detailed as possible."

// frameBuffer bounds how far the producer can run ahead of the narrator.
const frameBuffer = 8

// Analyze runs the capture producer and the narration consumer until the
// context is cancelled, then writes the PDF. The producer closes the frame
// channel to signal the end of the stream; there is no sentinel value.
func (s *videoService) Analyze(ctx context.Context, opts Options) (string, error) {
	if opts.IntervalSeconds <= 0 {
		opts.IntervalSeconds = 2
	}
	if err := os.MkdirAll(opts.FrameDir, 0o755); err != nil {
		return "", err
	}

	frames := make(chan entity.Frame, frameBuffer)
	go s.produce(ctx, opts, frames)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)

	var narrated int
	for frame := range frames {
		text, err := s.narrate(ctx, frame)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
				"frame": frame.ID,
			}).Warn("Video Analysis: frame narration failed")
			continue
		}

		pdf.AddPage()
		pdf.MultiCell(0, 6, Sanitize(fmt.Sprintf("Frame %s (%s)\n\n%s",
			frame.ID, frame.CapturedAt.Format("15:04:05"), text)), "", "L", false)
		narrated++
	}

	if narrated == 0 {
		return "", ErrNoFrames
	}

	if err := pdf.OutputFileAndClose(opts.OutputPDF); err != nil {
		return "", fmt.Errorf("write narration pdf: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"frames": narrated,
		"output": opts.OutputPDF,
	}).Info("Video Analysis: narration written")

	return opts.OutputPDF, nil
}

// produce captures one frame per tick until cancellation or a camera
// failure, then closes the channel.
func (s *videoService) produce(ctx context.Context, opts Options, frames chan<- entity.Frame) {
	defer close(frames)

	ticker := time.NewTicker(time.Duration(opts.IntervalSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		data, err := s.camera.Frame(ctx)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Video Analysis: capture failed, stopping producer")
			return
		}

		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Video Analysis: failed to mint frame id, stopping producer")
			return
		}
		path := filepath.Join(opts.FrameDir, id+".jpg")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
				"path":  path,
			}).Error("Video Analysis: failed to store frame, stopping producer")
			return
		}

		select {
		case frames <- entity.Frame{ID: id, Path: path, CapturedAt: time.Now()}:
		case <-ctx.Done():
			return
		}
	}
}

func (s *videoService) narrate(ctx context.Context, frame entity.Frame) (string, error) {
	data, err := os.ReadFile(frame.Path)
	if err != nil {
		return "", err
	}
	return s.gemini.AnalyzeImage(context.WithoutCancel(ctx), data, framePrompt)
}
