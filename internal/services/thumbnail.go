package services

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/courseadmin/dashboard/internal/models"
	"github.com/google/uuid"
)

var imageExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// decodeDataURL decodes a base64 data URL ("data:image/png;base64,...") into an upload file
// with a generated file name
func decodeDataURL(value string) (*models.UploadFile, error) {
	rest, ok := strings.CutPrefix(value, "data:")
	if !ok {
		return nil, fmt.Errorf("not a data url")
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("malformed data url")
	}

	params := strings.Split(header, ";")
	contentType := strings.TrimSpace(params[0])
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	isBase64 := false
	for _, param := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(param), "base64") {
			isBase64 = true
		}
	}
	if !isBase64 {
		return nil, fmt.Errorf("data url is not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some encoders drop the padding
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, fmt.Errorf("failed to decode data url: %w", err)
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("data url is empty")
	}

	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		ext = ".bin"
	}

	return &models.UploadFile{
		Filename:    "thumbnail-" + uuid.New().String() + ext,
		ContentType: contentType,
		Data:        data,
	}, nil
}
