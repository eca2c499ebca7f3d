package video

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// countingCamera serves a fixed number of frames, then fails so the
// producer closes the stream.
type countingCamera struct {
	mu     sync.Mutex
	frames int
	served int
}

func (c *countingCamera) Frame(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.served >= c.frames {
		return nil, errors.New("stream ended")
	}
	c.served++
	return []byte{0xff, 0xd8, 0xff}, nil
}

type narratingGemini struct {
	mu    sync.Mutex
	calls int
}

func (g *narratingGemini) AnalyzeImage(ctx context.Context, imageData []byte, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	return "A quiet hallway.", nil
}

func (g *narratingGemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", nil
}

func (g *narratingGemini) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return nil, nil
}

func (g *narratingGemini) Close() error { return nil }

type fixedIDs struct {
	mu sync.Mutex
	n  int
}

func (f *fixedIDs) NewULIDFromTimestamp(ts time.Time) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return "frame" + string(rune('0'+f.n)), nil
}

func (f *fixedIDs) TimestampedFileName(name, ext string, ts time.Time) string {
	return name + "." + ext
}

func (f *fixedIDs) EncodeBase64(data []byte) string { return "" }

func TestAnalyzeWritesNarration(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(new(strings.Builder))

	dir := t.TempDir()
	cam := &countingCamera{frames: 2}
	gem := &narratingGemini{}
	svc := New(logger, cam, gem, &fixedIDs{})

	out := filepath.Join(dir, "narration.pdf")
	path, err := svc.Analyze(context.Background(), Options{
		IntervalSeconds: 1,
		FrameDir:        filepath.Join(dir, "frames"),
		OutputPDF:       out,
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if path != out {
		t.Errorf("Analyze() = %q, want %q", path, out)
	}

	if gem.calls != 2 {
		t.Errorf("narrated %d frames, want 2", gem.calls)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("narration pdf missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("narration pdf is empty")
	}

	frames, err := os.ReadDir(filepath.Join(dir, "frames"))
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Errorf("stored %d frame files, want 2", len(frames))
	}
}

func TestAnalyzeNoFrames(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(new(strings.Builder))

	cam := &countingCamera{frames: 0}
	svc := New(logger, cam, &narratingGemini{}, &fixedIDs{})

	_, err := svc.Analyze(context.Background(), Options{
		IntervalSeconds: 1,
		FrameDir:        t.TempDir(),
		OutputPDF:       filepath.Join(t.TempDir(), "out.pdf"),
	})
	if !errors.Is(err, ErrNoFrames) {
		t.Fatalf("Analyze() error = %v, want ErrNoFrames", err)
	}
}
