package voice

import (
	"context"
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gordonklaus/portaudio"
)

// IRecorder captures one fixed-duration clip from the default input device
// and writes it as a 16-bit mono WAV file.
type IRecorder interface {
	RecordToFile(ctx context.Context) (string, error)
	Close()
}

type recorder struct {
	durationSeconds int
	sampleRate      int
}

const frameSize = 1024

func NewRecorder(durationSeconds, sampleRate int) (IRecorder, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	return &recorder{
		durationSeconds: durationSeconds,
		sampleRate:      sampleRate,
	}, nil
}

func (r *recorder) Close() {
	portaudio.Terminate()
}

func (r *recorder) RecordToFile(ctx context.Context) (string, error) {
	samples, err := r.record(ctx)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "aeye-*.wav")
	if err != nil {
		return "", err
	}

	if err := r.writeWAV(f, samples); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}

func (r *recorder) record(ctx context.Context) ([]int16, error) {
	buf := make([]int16, frameSize)

	stream, err := portaudio.OpenDefaultStream(1, 0, float64(r.sampleRate), len(buf), buf)
	if err != nil {
		return nil, fmt.Errorf("failed to open input stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, err
	}
	defer stream.Stop()

	total := r.sampleRate * r.durationSeconds
	out := make([]int16, 0, total)

	for len(out) < total {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := stream.Read(); err != nil {
			return nil, err
		}
		out = append(out, buf...)
	}

	return out[:total], nil
}

func (r *recorder) writeWAV(f *os.File, samples []int16) error {
	enc := wav.NewEncoder(f, r.sampleRate, 16, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: r.sampleRate},
		SourceBitDepth: 16,
		Data:           data,
	}

	if err := enc.Write(buf); err != nil {
		return err
	}

	return enc.Close()
}
