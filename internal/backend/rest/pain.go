package rest

import (
	"context"
	"net/http"

	"vitalmotion/client/internal/backend"
	"vitalmotion/client/internal/domain"
)

// The pain endpoints predate the /users/{uid}/... routes and carry the uid
// in the body instead of the path. Kept as-is for wire compatibility.

type painListRequest struct {
	UID string `json:"uid"`
}

type painListResponse struct {
	Pain []domain.PainNote `json:"pain"`
}

type addPainRequest struct {
	UID       string `json:"uid"`
	Date      string `json:"date"`
	PainLevel int    `json:"pain_level"`
	BodyPart  string `json:"body_part"`
}

type editPainRequest struct {
	UID       string `json:"uid"`
	HashID    string `json:"hash_id"`
	PainLevel int    `json:"pain_level"`
	BodyPart  string `json:"body_part"`
}

type removePainRequest struct {
	UID    string `json:"uid"`
	HashID string `json:"hash_id"`
}

// PainNotes fetches every pain note for the user.
func (c *Client) PainNotes(ctx context.Context, uid string) ([]domain.PainNote, error) {
	var resp painListResponse
	err := c.doJSON(ctx, http.MethodPost, c.url("/get-all-pain"), painListRequest{UID: uid}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Pain, nil
}

// AddPainNote records a new pain note. The backend assigns the hash id.
func (c *Client) AddPainNote(ctx context.Context, uid string, note domain.PainNote) error {
	return c.doJSON(ctx, http.MethodPost, c.url("/add-pain"), addPainRequest{
		UID:       uid,
		Date:      note.Date,
		PainLevel: note.PainLevel,
		BodyPart:  note.BodyPart,
	}, nil)
}

// EditPainNote updates the level and body part of the note with hashID.
func (c *Client) EditPainNote(ctx context.Context, uid, hashID string, painLevel int, bodyPart string) error {
	return c.doJSON(ctx, http.MethodPost, c.url("/edit-pain"), editPainRequest{
		UID:       uid,
		HashID:    hashID,
		PainLevel: painLevel,
		BodyPart:  bodyPart,
	}, nil)
}

// RemovePainNote deletes the note with hashID.
func (c *Client) RemovePainNote(ctx context.Context, uid, hashID string) error {
	return c.doJSON(ctx, http.MethodPost, c.url("/remove-pain"), removePainRequest{UID: uid, HashID: hashID}, nil)
}

var _ backend.PainAPI = (*Client)(nil)
