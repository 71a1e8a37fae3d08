package models

import (
	"time"
)

// Role describes how a user participates in the platform
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
	RoleBoth    Role = "both"
)

// IsValidRole reports whether the value is a known profile role
func IsValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleMentor, RoleBoth:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Username    string     `json:"username" db:"username" example:"alice"`
	Email       string     `json:"email" db:"email" example:"alice@example.com"`
	Password    string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FirstName   string     `json:"firstName" db:"first_name" example:"Alice"`
	LastName    string     `json:"lastName" db:"last_name" example:"Doe"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// Profile defines the extended profile stored in the 'profiles' table.
// Every user gets exactly one, created in the registration transaction.
type Profile struct {
	ID                 int64     `json:"id" db:"id"`
	UserID             int64     `json:"userId" db:"user_id"`
	PhoneNumber        string    `json:"phoneNumber" db:"phone_number"`
	Qualification      string    `json:"qualification" db:"qualification"`
	Interests          string    `json:"interests" db:"interests"`
	Role               Role      `json:"role" db:"role"`
	Bio                string    `json:"bio" db:"bio"`
	ProfilePhotoFileID *int64    `json:"profilePhotoFileId,omitempty" db:"profile_photo_file_id"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`

	User         *User `json:"user,omitempty"`
	ProfilePhoto *File `json:"profilePhoto,omitempty"`
}
