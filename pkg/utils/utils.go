package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	TimestampedFileName(name, ext string, t time.Time) string
	EncodeBase64(data []byte) string
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// TimestampedFileName builds "{name}_{timestamp}.{ext}" with spaces in the
// name collapsed to underscores.
func (u *utils) TimestampedFileName(name, ext string, t time.Time) string {
	safe := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	return fmt.Sprintf("%s_%s.%s", safe, t.Format("20060102_150405"), ext)
}

func (u *utils) EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
