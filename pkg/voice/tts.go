package voice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ISynthesizer speaks a text aloud and blocks until playback finishes.
type ISynthesizer interface {
	Say(text string) error
}

type ttsService struct {
	apiKey  string
	voiceID string
	baseURL string
	client  *http.Client
}

// NewTTSService builds the ElevenLabs synthesizer. The returned service
// fetches MP3 audio and plays it on the default output device.
func NewTTSService(apiKey, voiceID string) ISynthesizer {
	return &ttsService{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: "https://api.elevenlabs.io/v1/text-to-speech/",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (tts *ttsService) Say(text string) error {
	audio, err := tts.generateAudio(text)
	if err != nil {
		return err
	}

	return playMP3(audio)
}

func (tts *ttsService) generateAudio(text string) ([]byte, error) {
	url := tts.baseURL + tts.voiceID

	requestBody := map[string]interface{}{
		"text":     text,
		"model_id": "eleven_multilingual_v2",
		"voice_settings": map[string]interface{}{
			"stability":         0.5,
			"similarity_boost":  0.8,
			"style":             0.0,
			"use_speaker_boost": true,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", tts.apiKey)

	resp, err := tts.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ElevenLabs API error: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// chainSynthesizer tries each synthesizer in order until one succeeds.
type chainSynthesizer struct {
	chain []ISynthesizer
}

func NewChainSynthesizer(synths ...ISynthesizer) ISynthesizer {
	return &chainSynthesizer{chain: synths}
}

func (c *chainSynthesizer) Say(text string) error {
	var lastErr error
	for _, s := range c.chain {
		if err := s.Say(text); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
