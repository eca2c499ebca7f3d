package faces

import (
	"path/filepath"
	"reflect"
	"testing"

	"ProjectAEye/internal/entity"
)

func TestFaceLogRoundTrip(t *testing.T) {
	log := NewFaceLog(filepath.Join(t.TempDir(), "face_log.txt"))

	regs := []entity.FaceRegistration{
		{Name: "Alice", ImagePath: "known_image/Alice_20250101_120000.jpg"},
		{Name: "Bob", ImagePath: "known_image/Bob_20250101_130000.jpg"},
		{Name: "Alice", ImagePath: "known_image/Alice_20250102_090000.jpg"},
	}
	for _, reg := range regs {
		if err := log.Append(reg); err != nil {
			t.Fatalf("Append(%v) error = %v", reg, err)
		}
	}

	got, err := log.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if !reflect.DeepEqual(got, regs) {
		t.Errorf("All() = %v, want %v", got, regs)
	}
}

func TestFaceLogAllMissingFile(t *testing.T) {
	log := NewFaceLog(filepath.Join(t.TempDir(), "face_log.txt"))

	got, err := log.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if got != nil {
		t.Errorf("All() = %v, want nil for a missing log", got)
	}
}

func TestFaceLogDeleteByName(t *testing.T) {
	log := NewFaceLog(filepath.Join(t.TempDir(), "face_log.txt"))

	for _, reg := range []entity.FaceRegistration{
		{Name: "Alice", ImagePath: "a1.jpg"},
		{Name: "Bob", ImagePath: "b1.jpg"},
		{Name: "Alice", ImagePath: "a2.jpg"},
	} {
		if err := log.Append(reg); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := log.DeleteByName("Alice")
	if err != nil {
		t.Fatalf("DeleteByName() error = %v", err)
	}
	if want := []string{"a1.jpg", "a2.jpg"}; !reflect.DeepEqual(removed, want) {
		t.Errorf("removed = %v, want %v", removed, want)
	}

	left, err := log.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 1 || left[0].Name != "Bob" {
		t.Errorf("remaining = %v, want only Bob", left)
	}
}

func TestFaceLogDeleteUnknownName(t *testing.T) {
	log := NewFaceLog(filepath.Join(t.TempDir(), "face_log.txt"))
	if err := log.Append(entity.FaceRegistration{Name: "Alice", ImagePath: "a1.jpg"}); err != nil {
		t.Fatal(err)
	}

	removed, err := log.DeleteByName("Carol")
	if err != nil {
		t.Fatalf("DeleteByName() error = %v", err)
	}
	if removed != nil {
		t.Errorf("removed = %v, want nil", removed)
	}

	left, _ := log.All()
	if len(left) != 1 {
		t.Errorf("remaining = %v, want the untouched entry", left)
	}
}
