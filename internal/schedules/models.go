package schedules

import (
	"fmt"
	"time"

	"spawn-scheduler/internal/spawn"
)

// Record is a generated schedule kept by the service under its plan name.
type Record struct {
	Name     string
	Plan     spawn.Plan
	Events   []spawn.Event
	Text     string
	Checksum uint64

	// Set by the repository when the record is saved.
	SavedAt time.Time
}

// ETag returns the quoted entity tag derived from the schedule checksum.
func (r *Record) ETag() string {
	return fmt.Sprintf(`"%016x"`, r.Checksum)
}
