package handler

import (
	"net/http"
	"strconv"

	"quicknotes/internal/contract"
	"quicknotes/internal/utils"
	"quicknotes/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type NoteService interface {
	CreateNote(ownerID int64, req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	GetNotes(ownerID int64) ([]*contract.NoteResponse, apierror.ErrorResponse)
	DeleteNote(ownerID, noteID int64) apierror.ErrorResponse
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	userID, cerr := utils.GetUserIDFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	note, apierr := n.NoteService.CreateNote(userID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Note successfully created", "note": note}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	userID, cerr := utils.GetUserIDFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notes, apierr := n.NoteService.GetNotes(userID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Fetched all the notes successfully", "notes": notes}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	userID, cerr := utils.GetUserIDFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	if apierr := n.NoteService.DeleteNote(userID, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Note deleted"}
	return c.JSON(http.StatusOK, &resp)
}
