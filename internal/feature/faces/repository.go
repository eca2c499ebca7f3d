package faces

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"ProjectAEye/internal/entity"
)

// IFaceLog persists the registry of known faces as "name, path" lines in a
// plain text file next to the saved images.
type IFaceLog interface {
	Append(reg entity.FaceRegistration) error
	All() ([]entity.FaceRegistration, error)

	// DeleteByName drops every entry for name and returns the image paths
	// that belonged to them.
	DeleteByName(name string) ([]string, error)
}

type fileFaceLog struct {
	path string
}

func NewFaceLog(path string) IFaceLog {
	return &fileFaceLog{path: path}
}

func (l *fileFaceLog) Append(reg entity.FaceRegistration) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open face log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s, %s\n", reg.Name, reg.ImagePath); err != nil {
		return fmt.Errorf("append face log: %w", err)
	}
	return nil
}

func (l *fileFaceLog) All() ([]entity.FaceRegistration, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open face log: %w", err)
	}
	defer f.Close()

	var regs []entity.FaceRegistration
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, path, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		regs = append(regs, entity.FaceRegistration{
			Name:      strings.TrimSpace(name),
			ImagePath: strings.TrimSpace(path),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan face log: %w", err)
	}
	return regs, nil
}

func (l *fileFaceLog) DeleteByName(name string) ([]string, error) {
	regs, err := l.All()
	if err != nil {
		return nil, err
	}

	var kept []entity.FaceRegistration
	var removed []string
	for _, reg := range regs {
		if reg.Name == name {
			removed = append(removed, reg.ImagePath)
			continue
		}
		kept = append(kept, reg)
	}
	if len(removed) == 0 {
		return nil, nil
	}

	f, err := os.Create(l.path)
	if err != nil {
		return nil, fmt.Errorf("rewrite face log: %w", err)
	}
	defer f.Close()

	for _, reg := range kept {
		if _, err := fmt.Fprintf(f, "%s, %s\n", reg.Name, reg.ImagePath); err != nil {
			return nil, fmt.Errorf("rewrite face log: %w", err)
		}
	}
	return removed, nil
}
