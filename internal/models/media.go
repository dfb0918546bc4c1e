package models

// UploadFile is an in-memory file sent as a multipart part
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
