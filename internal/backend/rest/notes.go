package rest

import (
	"context"
	"net/http"
	"net/url"

	"vitalmotion/client/internal/backend"
	"vitalmotion/client/internal/domain"
)

// Journals lists all journal entries.
func (c *Client) Journals(ctx context.Context, uid string) ([]domain.Journal, error) {
	var journals []domain.Journal
	err := c.doJSON(ctx, http.MethodGet, c.url("/users/%s/journals", url.PathEscape(uid)), nil, &journals)
	if err != nil {
		return nil, err
	}
	return journals, nil
}

// AddJournal stores a new journal entry.
func (c *Client) AddJournal(ctx context.Context, uid string, entry domain.Journal) error {
	return c.doJSON(ctx, http.MethodPost, c.url("/users/%s/journals", url.PathEscape(uid)), entry, nil)
}

// DeleteJournal removes one journal entry.
func (c *Client) DeleteJournal(ctx context.Context, uid, journalID string) error {
	return c.doJSON(ctx, http.MethodDelete,
		c.url("/users/%s/journals/%s", url.PathEscape(uid), url.PathEscape(journalID)), nil, nil)
}

// Medications lists all medication notes.
func (c *Client) Medications(ctx context.Context, uid string) ([]domain.Medication, error) {
	var meds []domain.Medication
	err := c.doJSON(ctx, http.MethodGet, c.url("/users/%s/medications", url.PathEscape(uid)), nil, &meds)
	if err != nil {
		return nil, err
	}
	return meds, nil
}

// AddMedication stores a new medication note.
func (c *Client) AddMedication(ctx context.Context, uid string, med domain.Medication) error {
	return c.doJSON(ctx, http.MethodPost, c.url("/users/%s/medications", url.PathEscape(uid)), med, nil)
}

// DeleteMedication removes one medication note.
func (c *Client) DeleteMedication(ctx context.Context, uid, medicationID string) error {
	return c.doJSON(ctx, http.MethodDelete,
		c.url("/users/%s/medications/%s", url.PathEscape(uid), url.PathEscape(medicationID)), nil, nil)
}

var (
	_ backend.JournalAPI    = (*Client)(nil)
	_ backend.MedicationAPI = (*Client)(nil)
)
