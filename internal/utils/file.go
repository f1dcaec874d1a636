package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsAllowedFileType(filename string, allowedTypes []string) bool {
	ext := strings.TrimPrefix(GetFileExtension(filename), ".")
	for _, allowedType := range allowedTypes {
		if ext == allowedType {
			return true
		}
	}
	return false
}

func IsImageFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedImageTypes)
}

// GenerateUniqueFilename keeps the original extension and prefixes a unix
// timestamp so keys sort by upload time.
func GenerateUniqueFilename(originalFilename string) string {
	return fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString()[:8], GetFileExtension(originalFilename))
}

func GetContentType(filename string) string {
	switch GetFileExtension(filename) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return "application/octet-stream"
}
