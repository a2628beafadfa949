package domain

// PainNote is a dated pain report for one body part. HashID is assigned by
// the backend and is the sole key for edits and deletes.
type PainNote struct {
	HashID    string `json:"hash_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	PainLevel int    `json:"pain_level"`
	BodyPart  string `json:"body_part"`
}
