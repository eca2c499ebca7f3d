package camera

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

type ffmpegGrabber struct {
	device string
}

// NewFFmpegGrabber grabs one frame from a V4L2 device through ffmpeg. It is
// the fallback path when the network camera is unreachable.
func NewFFmpegGrabber(device string) LocalGrabber {
	return &ffmpegGrabber{device: device}
}

func (g *ffmpegGrabber) Grab(ctx context.Context) ([]byte, error) {
	outPath := filepath.Join(os.TempDir(), fmt.Sprintf("aeye-frame-%s.jpg", uuid.New().String()))
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-f", "v4l2",
		"-i", g.device,
		"-frames:v", "1",
		"-y",
		outPath,
	)

	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("ffmpeg capture failed: %w (%s)", err, string(out))
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("ffmpeg produced an empty frame from %s", g.device)
	}

	return data, nil
}
