package entity

type Note struct {
	ID        int64  `gorm:"primaryKey"`
	Content   string `gorm:"not null"`
	OwnerID   int64  `gorm:"not null;index"` // References: users(id)
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null"`
}
