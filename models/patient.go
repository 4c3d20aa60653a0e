package models

// Patient is one patient master record as read from the local store. IDNums
// maps a 1-based identifier slot to its value; absent slots are simply not
// present in the map.
type Patient struct {
	ID            int64
	Forename      string
	Surname       string
	DOB           string // ISO-8601 date, empty when unknown
	Sex           string
	IDNums        map[int]int64
	MoveOffTablet bool
}

// HasIDNum reports whether the identifier for the given 1-based slot is set.
func (p Patient) HasIDNum(slot int) bool {
	_, ok := p.IDNums[slot]
	return ok
}

// HasAnyIDNum reports whether at least one identifier slot is populated.
func (p Patient) HasAnyIDNum() bool {
	return len(p.IDNums) > 0
}
