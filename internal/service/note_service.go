package service

import (
	"quicknotes/internal/contract"
	"quicknotes/internal/domain/entity"
	"quicknotes/internal/utils"
	"quicknotes/internal/utils/apierror"
	"quicknotes/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type NoteRepository interface {
	FindAllByOwner(ownerID int64) ([]*entity.Note, error)
	Save(note *entity.Note) error
	DeleteByIDAndOwner(id, ownerID int64) error
}

type DefaultNoteService struct {
	NoteRepo NoteRepository
	Validate *validator.Validate
}

func NewNoteService(noteRepo NoteRepository, validate *validator.Validate) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo: noteRepo,
		Validate: validate,
	}
}

func (n *DefaultNoteService) CreateNote(ownerID int64, req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	id, err := uid.Generate()
	if err != nil {
		log.Errorf("failed to generate note ID: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	note := &entity.Note{
		ID:        id,
		Content:   req.Content,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) GetNotes(ownerID int64) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindAllByOwner(ownerID)
	if err != nil {
		log.Errorf("failed to fetch notes for owner %d: %v", ownerID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp, nil
}

// DeleteNote removes the note only when the requester owns it. Missing and
// foreign ids alike are silent no-ops: the caller learns nothing about
// notes it does not own.
func (n *DefaultNoteService) DeleteNote(ownerID, noteID int64) apierror.ErrorResponse {
	if err := n.NoteRepo.DeleteByIDAndOwner(noteID, ownerID); err != nil {
		log.Errorf("failed to delete note %d: %v", noteID, err)
		return apierror.InternalServerError
	}
	return nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:        note.ID,
		Content:   note.Content,
		CreatedAt: utils.FormatEpoch(note.CreatedAt),
		UpdatedAt: utils.FormatEpoch(note.UpdatedAt),
	}
}
