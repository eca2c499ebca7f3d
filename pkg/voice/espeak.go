package voice

import (
	"fmt"
	"os/exec"
)

type espeakSynthesizer struct {
	binary string
}

// NewEspeakSynthesizer speaks through the espeak-ng binary. It needs no
// network and no credentials, which makes it the fallback engine.
func NewEspeakSynthesizer() ISynthesizer {
	return &espeakSynthesizer{binary: "espeak-ng"}
}

func (e *espeakSynthesizer) Say(text string) error {
	if text == "" {
		return nil
	}

	cmd := exec.Command(e.binary, text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("espeak-ng failed: %w (%s)", err, string(out))
	}

	return nil
}
