package models

import "time"

// Image is one file in the media library.
type Image struct {
	Filename      string    `json:"filename"`
	URL           string    `json:"url"`
	Size          int64     `json:"size"`
	FormattedSize string    `json:"formattedSize"`
	Uploaded      time.Time `json:"uploaded"`
}
