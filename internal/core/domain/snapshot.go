package domain

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// CurrentSchemaVersion is the snapshot schema this build reads and writes.
const CurrentSchemaVersion = "2.1"

// UnknownSchemaVersion tags snapshots saved before versions were recorded.
const UnknownSchemaVersion = "unknown"

// Snapshot is the persisted state of the whole fleet.
type Snapshot struct {
	Bikes         []Bike `json:"bikes"`
	CurrentBikeID string `json:"currentBikeId"`
	SchemaVersion string `json:"schemaVersion"`
}

// Bike returns a pointer to the bike with the given id.
func (s *Snapshot) Bike(id string) (*Bike, bool) {
	for i := range s.Bikes {
		if s.Bikes[i].ID == id {
			return &s.Bikes[i], true
		}
	}
	return nil, false
}

// ResolveCurrent keeps CurrentBikeID when it names an existing bike and
// otherwise falls back to the first bike, or empty for an empty fleet.
func (s *Snapshot) ResolveCurrent() {
	if _, ok := s.Bike(s.CurrentBikeID); ok {
		return
	}
	s.CurrentBikeID = ""
	if len(s.Bikes) > 0 {
		s.CurrentBikeID = s.Bikes[0].ID
	}
}

func (s Snapshot) Clone() Snapshot {
	dup := s
	if s.Bikes != nil {
		dup.Bikes = make([]Bike, len(s.Bikes))
		for i, b := range s.Bikes {
			dup.Bikes[i] = b.Clone()
		}
	}
	return dup
}

// Backup is the pre-migration copy kept for disaster recovery.
type Backup struct {
	Bikes         []Bike    `json:"bikes"`
	CurrentBikeID string    `json:"currentBikeId"`
	BackupDate    time.Time `json:"backupDate"`
	Version       string    `json:"version"`
}

// ExportDocument is the downloadable fleet file.
type ExportDocument struct {
	Bikes         []Bike          `json:"bikes"`
	CurrentBikeID string          `json:"currentBikeId"`
	ExportDate    strfmt.DateTime `json:"exportDate"`
	Version       string          `json:"version"`
}
