package models

import "time"

// Backup describes one snapshot file in the backup directory. CreatedAt is
// decoded from the filename when possible, otherwise taken from the file
// modification time.
type Backup struct {
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created"`
}
