package repository

import (
	"quicknotes/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) FindAllByOwner(ownerID int64) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Where("owner_id = ?", ownerID).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Save(note).Error
}

// DeleteByIDAndOwner deletes the note only when it belongs to the given
// owner. Deleting a missing or foreign note is a no-op, not an error.
func (d *DefaultNoteRepository) DeleteByIDAndOwner(id, ownerID int64) error {
	return d.db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&entity.Note{}).Error
}
