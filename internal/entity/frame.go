package entity

import "time"

// Frame is one captured camera frame handed from the video capture loop to
// the describer.
type Frame struct {
	ID         string
	Path       string
	CapturedAt time.Time
}
