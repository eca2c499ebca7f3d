package faces

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"os"

	pigo "github.com/esimov/pigo/core"
)

// Detection is a single face match inside a frame.
type Detection struct {
	Row, Col, Scale int
	Quality         float32
}

type IFaceDetector interface {
	Detect(frame []byte) ([]Detection, error)
}

type pigoDetector struct {
	classifier   *pigo.Pigo
	minSize      int
	scaleFactor  float64
	qualityScore float32
}

// NewDetector loads a pigo binary cascade from path and returns a detector
// tuned with the given thresholds.
func NewDetector(cascadePath string, minSize int, scaleFactor float64, qualityScore float64) (IFaceDetector, error) {
	cascade, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("read cascade %s: %w", cascadePath, err)
	}

	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("unpack cascade: %w", err)
	}

	return &pigoDetector{
		classifier:   classifier,
		minSize:      minSize,
		scaleFactor:  scaleFactor,
		qualityScore: float32(qualityScore),
	}, nil
}

func (d *pigoDetector) Detect(frame []byte) ([]Detection, error) {
	img, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}

	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	pixels := pigo.RgbToGrayscale(img)

	params := pigo.CascadeParams{
		MinSize:     d.minSize,
		MaxSize:     1000,
		ShiftFactor: 0.1,
		ScaleFactor: d.scaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(params, 0.0)
	dets = d.classifier.ClusterDetections(dets, 0.2)

	var found []Detection
	for _, det := range dets {
		if det.Q < d.qualityScore {
			continue
		}
		found = append(found, Detection{
			Row:     det.Row,
			Col:     det.Col,
			Scale:   det.Scale,
			Quality: det.Q,
		})
	}

	return found, nil
}
