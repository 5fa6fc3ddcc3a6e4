package storage

import "time"

type RefreshRun struct {
	ID            int64
	StartedAt     time.Time
	FinishedAt    *time.Time
	Status        string // running | ok | failed
	Gameweek      int
	PlayerCount   int
	DatasetSHA256 string
	Error         string
}
