package domain

import "time"

// Video represents a catalog entry mapping a lookup code to a stored file
type Video struct {
	ID        int
	Code      string
	FilePath  string
	CreatedAt time.Time
}

// ResolveStatus describes the outcome of a code lookup
type ResolveStatus int

const (
	// ResolveFound means the code is registered and the file is on disk
	ResolveFound ResolveStatus = iota
	// ResolveNotFound means no video is registered under the code
	ResolveNotFound
	// ResolveFileMissing means the code is registered but the file is gone
	ResolveFileMissing
)

// Resolution is the result of resolving a lookup code
type Resolution struct {
	Status   ResolveStatus
	FilePath string
}
