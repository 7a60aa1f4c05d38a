package contract

// Content presence is checked by binding only; an empty body is accepted.
type CreateNoteRequest struct {
	Content string `json:"content" validate:"max=1000000"`
}

type NoteResponse struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
