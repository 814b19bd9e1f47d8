package model

// VersionRecord identifies a build of the distributed package.
//
// Two records are persisted: the installed one and the desired one. A missing record
// file reads as the zero VersionRecord.
type VersionRecord struct {
	BuildID string `json:"BuildId"`
}

// IsZero tells if no build is recorded
func (v VersionRecord) IsZero() bool {
	return v.BuildID == ""
}

// Matches tells if both records designate the same build
func (v VersionRecord) Matches(other VersionRecord) bool {
	return v.BuildID == other.BuildID
}
