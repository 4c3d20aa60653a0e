package models

import "fmt"

// UploadMode selects what happens to locally stored data after a fully
// successful upload.
type UploadMode int

const (
	// UploadCopy mirrors local data to the server and leaves the local
	// database intact.
	UploadCopy UploadMode = iota

	// UploadMoveKeepingPatients retires task data from the device after
	// upload but keeps patient master records for future visits.
	UploadMoveKeepingPatients

	// UploadMove retires all non-settings data from the device after
	// upload, patients included.
	UploadMove
)

// Preserving reports whether the mode retires source data after upload and
// therefore requires a server-side preservation checkpoint.
func (m UploadMode) Preserving() bool {
	return m != UploadCopy
}

func (m UploadMode) String() string {
	switch m {
	case UploadCopy:
		return "copy"
	case UploadMoveKeepingPatients:
		return "move_keeping_patients"
	case UploadMove:
		return "move"
	default:
		return fmt.Sprintf("unknown_mode_%d", int(m))
	}
}

// ParseUploadMode maps a mode name (as accepted on the command line) to its
// UploadMode value.
func ParseUploadMode(s string) (UploadMode, error) {
	switch s {
	case "copy":
		return UploadCopy, nil
	case "move_keeping_patients", "move-keep-patients":
		return UploadMoveKeepingPatients, nil
	case "move":
		return UploadMove, nil
	default:
		return 0, fmt.Errorf("unknown upload mode %q", s)
	}
}
