package faces

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ProjectAEye/internal/entity"

	"github.com/sirupsen/logrus"
)

func (s *faceService) Register(ctx context.Context) (string, error) {
	frame, err := s.camera.Frame(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Face Registration: failed to capture frame")
		return "", ErrNoFrame
	}

	dets, err := s.detector.Detect(frame)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Face Registration: detection failed")
		return "", err
	}
	if len(dets) == 0 {
		return "", ErrNoFace
	}

	name, err := s.askName(ctx)
	if err != nil {
		return "", err
	}

	fileName := s.utils.TimestampedFileName(name, "jpg", time.Now())
	imagePath := filepath.Join(s.outputDir, fileName)

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(imagePath, frame, 0o644); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
			"path":  imagePath,
		}).Error("Face Registration: failed to save image")
		return "", err
	}

	if err := s.faceLog.Append(entity.FaceRegistration{Name: name, ImagePath: imagePath}); err != nil {
		return "", err
	}

	if s.s3 != nil {
		if _, err := s.s3.UploadBytes("faces/"+fileName, frame); err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
				"key":   "faces/" + fileName,
			}).Warn("Face Registration: cloud backup failed")
		}
	}

	s.log.WithFields(logrus.Fields{
		"name": name,
		"path": imagePath,
	}).Info("Face Registration: face registered")

	return name, nil
}

func (s *faceService) Registered() ([]string, error) {
	regs, err := s.faceLog.All()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, reg := range regs {
		if seen[reg.Name] {
			continue
		}
		seen[reg.Name] = true
		names = append(names, reg.Name)
	}
	return names, nil
}

func (s *faceService) Delete(name string) error {
	removed, err := s.faceLog.DeleteByName(name)
	if err != nil {
		return err
	}

	for _, path := range removed {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
				"path":  path,
			}).Warn("Face Registration: failed to remove image")
		}
	}
	return nil
}

// askName asks for the person's name through the voice gateway, falling
// back to the text input stream when nothing intelligible comes back.
func (s *faceService) askName(ctx context.Context) (string, error) {
	s.voice.Speak("Please say the name of the person.")

	name, err := s.voice.Listen(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Face Registration: voice name capture failed, falling back to text input")
	}

	name = strings.TrimSpace(name)
	if name == "" && s.nameInput != nil {
		scanner := bufio.NewScanner(s.nameInput)
		if scanner.Scan() {
			name = strings.TrimSpace(scanner.Text())
		}
	}
	if name == "" {
		return "", ErrNoName
	}
	return name, nil
}
