package models

import "time"

// AttachmentType distinguishes image attachments from other documents.
type AttachmentType string

const (
	AttachmentImage    AttachmentType = "image"
	AttachmentDocument AttachmentType = "document"
)

type Attachment struct {
	Name string         `json:"name"`
	Type AttachmentType `json:"type"`
	URL  string         `json:"url"`
}

type JournalEntry struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Date    time.Time   `json:"date"`
	File    *Attachment `json:"file,omitempty"`
}

// AttachmentTypeFor classifies a MIME type.
func AttachmentTypeFor(contentType string) AttachmentType {
	if len(contentType) >= 6 && contentType[:6] == "image/" {
		return AttachmentImage
	}
	return AttachmentDocument
}
