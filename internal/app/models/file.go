package models

import "time"

// FileResourceType identifies what a stored media blob is attached to
type FileResourceType string

const (
	ResourceProfilePicture FileResourceType = "PROFILE_PICTURE"
	ResourceCommunityImage FileResourceType = "COMMUNITY_IMAGE"
	ResourcePostImage      FileResourceType = "POST_IMAGE"
)

// File references an uploaded media blob stored on disk
type File struct {
	ID           int64            `json:"id" db:"id"`
	FileName     string           `json:"fileName" db:"file_name"`
	FilePath     string           `json:"filePath" db:"file_path"`
	FileURL      string           `json:"fileUrl" db:"file_url"`
	FileSize     int64            `json:"fileSize" db:"file_size"`
	FileType     string           `json:"fileType" db:"file_type"`
	ResourceType FileResourceType `json:"resourceType" db:"resource_type"`
	UploadedBy   int64            `json:"uploadedBy" db:"uploaded_by"`
	CreatedAt    time.Time        `json:"createdAt" db:"created_at"`
}
