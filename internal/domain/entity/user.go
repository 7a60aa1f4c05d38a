package entity

// User is an account created on its first OTP request or first Google sign-in.
//
// OTP holds the currently pending one-time code; it is empty when no code has
// been issued or after the last one was successfully verified. At most one
// code is pending at any time, re-issuing overwrites the previous one.
type User struct {
	ID              int64  `gorm:"primaryKey"`
	Email           string `gorm:"not null;uniqueIndex"`
	Name            string `gorm:"not null"`
	DateOfBirth     int64  // epoch millis, zero when never provided
	OTP             string
	GoogleSubjectID string
	CreatedAt       int64 `gorm:"not null"`
	UpdatedAt       int64 `gorm:"not null;autoUpdateTime:false"`
}
