package models

// IDSlotCount is the number of configurable patient identifier slots the
// server describes. Slot numbering on the wire is 1-based.
const IDSlotCount = 8

// IDSlotDescription holds the server-configured long and short descriptions
// for one patient identifier slot (e.g. "NHS number" / "NHS#").
type IDSlotDescription struct {
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
}

// ServerIdentity is the persisted identity metadata of the remote server.
//
// A successful registration or metadata refresh overwrites every field from a
// single server response; partial updates are never applied.
type ServerIdentity struct {
	DatabaseTitle  string                            `json:"database_title"`
	ServerVersion  string                            `json:"server_version"`
	UploadPolicy   string                            `json:"upload_policy"`
	FinalizePolicy string                            `json:"finalize_policy"`
	IDSlots        [IDSlotCount]IDSlotDescription    `json:"id_slots"`
}

// SlotDescriptionsDiffer reports whether any identifier slot description in
// other differs from the receiver. Slots with an empty description on the
// receiver are ignored, so a device that has never cached identity metadata
// matches anything.
func (s ServerIdentity) SlotDescriptionsDiffer(other ServerIdentity) bool {
	for i := range s.IDSlots {
		if s.IDSlots[i].Description == "" {
			continue
		}
		if s.IDSlots[i] != other.IDSlots[i] {
			return true
		}
	}
	return false
}
