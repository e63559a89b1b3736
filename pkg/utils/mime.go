package utils

import (
	"path/filepath"
	"strings"
)

var mimeByExt = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ContentTypeByExt resolves a content type from a file extension, falling
// back to octet-stream for anything unknown.
func ContentTypeByExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := mimeByExt[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// AllowedDocumentType reports whether an upload content type is accepted.
func AllowedDocumentType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png",
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return true
	}
	return false
}
