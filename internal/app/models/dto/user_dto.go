package dto

import "time"

// UserResponse represents basic user information
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ProfileResponse represents a user together with their profile
type ProfileResponse struct {
	ID                 int64      `json:"id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	PhoneNumber        string     `json:"phoneNumber,omitempty"`
	Qualification      string     `json:"qualification,omitempty"`
	Interests          string     `json:"interests,omitempty"`
	Role               string     `json:"role"`
	Bio                string     `json:"bio,omitempty"`
	ProfilePhotoFileID *int64     `json:"profilePhotoFileId,omitempty"`
	ProfilePhotoURL    string     `json:"profilePhotoUrl,omitempty"`
	LastLoginAt        *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// UpdateProfileRequest represents profile update data.
// Pointer fields are applied only when present in the request body.
type UpdateProfileRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email" binding:"omitempty,email"`
	PhoneNumber   *string `json:"phoneNumber"`
	Qualification *string `json:"qualification"`
	Interests     *string `json:"interests"`
	Role          *string `json:"role"`
	Bio           *string `json:"bio"`
}

// FileUploadResponse is returned after a successful media upload
type FileUploadResponse struct {
	FileID  int64  `json:"fileId"`
	FileURL string `json:"fileUrl"`
}
