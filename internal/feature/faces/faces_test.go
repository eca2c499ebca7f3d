package faces

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type fakeCamera struct {
	frame []byte
	err   error
}

func (f *fakeCamera) Frame(ctx context.Context) ([]byte, error) {
	return f.frame, f.err
}

type fakeDetector struct {
	dets []Detection
	err  error
}

func (f *fakeDetector) Detect(frame []byte) ([]Detection, error) {
	return f.dets, f.err
}

type fakeVoice struct {
	name   string
	err    error
	spoken []string
}

func (f *fakeVoice) Listen(ctx context.Context) (string, error) { return f.name, f.err }
func (f *fakeVoice) Speak(text string)                          { f.spoken = append(f.spoken, text) }

type fakeUtils struct{}

func (fakeUtils) NewULIDFromTimestamp(t time.Time) (string, error) { return "01TEST", nil }
func (fakeUtils) TimestampedFileName(name, ext string, t time.Time) string {
	return name + "_20250102_150405." + ext
}
func (fakeUtils) EncodeBase64(data []byte) string { return "" }

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(new(strings.Builder))
	return logger
}

func newService(t *testing.T, cam *fakeCamera, det *fakeDetector, v *fakeVoice, nameInput string) (IFaceService, string) {
	t.Helper()
	dir := t.TempDir()
	faceLog := NewFaceLog(filepath.Join(dir, "face_log.txt"))
	svc := New(newTestLogger(), cam, det, faceLog, v, nil, fakeUtils{}, dir, strings.NewReader(nameInput))
	return svc, dir
}

func TestRegister(t *testing.T) {
	cam := &fakeCamera{frame: []byte{0xff, 0xd8}}
	det := &fakeDetector{dets: []Detection{{Row: 10, Col: 10, Scale: 40, Quality: 9}}}
	v := &fakeVoice{name: "Alice"}
	svc, dir := newService(t, cam, det, v, "")

	name, err := svc.Register(context.Background())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if name != "Alice" {
		t.Errorf("Register() = %q, want Alice", name)
	}

	saved := filepath.Join(dir, "Alice_20250102_150405.jpg")
	if _, err := os.Stat(saved); err != nil {
		t.Errorf("saved image missing: %v", err)
	}

	names, err := svc.Registered()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Alice"}; !reflect.DeepEqual(names, want) {
		t.Errorf("Registered() = %v, want %v", names, want)
	}
}

func TestRegisterNoFace(t *testing.T) {
	cam := &fakeCamera{frame: []byte{0xff}}
	svc, _ := newService(t, cam, &fakeDetector{}, &fakeVoice{name: "Alice"}, "")

	if _, err := svc.Register(context.Background()); !errors.Is(err, ErrNoFace) {
		t.Fatalf("Register() error = %v, want ErrNoFace", err)
	}
}

func TestRegisterNameFallsBackToTextInput(t *testing.T) {
	cam := &fakeCamera{frame: []byte{0xff}}
	det := &fakeDetector{dets: []Detection{{Quality: 9}}}
	v := &fakeVoice{err: errors.New("microphone busy")}
	svc, _ := newService(t, cam, det, v, "Bob\n")

	name, err := svc.Register(context.Background())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if name != "Bob" {
		t.Errorf("Register() = %q, want Bob from the text fallback", name)
	}
}

func TestRegisterNoNameAnywhere(t *testing.T) {
	cam := &fakeCamera{frame: []byte{0xff}}
	det := &fakeDetector{dets: []Detection{{Quality: 9}}}
	svc, _ := newService(t, cam, det, &fakeVoice{}, "")

	if _, err := svc.Register(context.Background()); !errors.Is(err, ErrNoName) {
		t.Fatalf("Register() error = %v, want ErrNoName", err)
	}
}

func TestDeleteRemovesImages(t *testing.T) {
	cam := &fakeCamera{frame: []byte{0xff, 0xd8}}
	det := &fakeDetector{dets: []Detection{{Quality: 9}}}
	v := &fakeVoice{name: "Alice"}
	svc, dir := newService(t, cam, det, v, "")

	if _, err := svc.Register(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete("Alice"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "Alice_20250102_150405.jpg")); !os.IsNotExist(err) {
		t.Error("image still present after Delete")
	}
	names, _ := svc.Registered()
	if len(names) != 0 {
		t.Errorf("Registered() = %v after Delete, want empty", names)
	}
}
