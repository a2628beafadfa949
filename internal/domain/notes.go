package domain

// Journal is a free-text journal entry.
type Journal struct {
	ID      string `json:"id,omitempty"`
	Date    string `json:"date"` // YYYY-MM-DD
	Content string `json:"content"`
}

// Medication is a medication note (name, dosage and time of day).
type Medication struct {
	ID     string `json:"id,omitempty"`
	Date   string `json:"date"` // YYYY-MM-DD
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Time   string `json:"time"`
}
