package workorder

import (
	"fmt"
	"io"
	"strings"
)

// MaxAttachmentSize caps each media file at 50 MiB.
const MaxAttachmentSize = 50 << 20

var allowedMediaTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
	"video/mp4":  {},
	"video/mov":  {},
	"video/avi":  {},
	"video/wmv":  {},
	"video/flv":  {},
	"video/webm": {},
}

// Attachment is a media file held client-side until the parent work
// order is durably created. Name, Size, ContentType and LastModified
// together identify a file for duplicate detection.
type Attachment struct {
	Name         string
	Size         int64
	ContentType  string
	LastModified int64
	Data         io.Reader
}

type RejectedAttachment struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ScreenAttachments splits the selection into files that may be
// uploaded and files rejected with a user-facing reason. Rejection
// happens before any network call: wrong type, over the size cap, or a
// duplicate of an already accepted file.
func ScreenAttachments(files []Attachment) (accepted []Attachment, rejected []RejectedAttachment) {
	for _, f := range files {
		if _, ok := allowedMediaTypes[strings.ToLower(f.ContentType)]; !ok {
			rejected = append(rejected, RejectedAttachment{
				Name:   f.Name,
				Reason: fmt.Sprintf("unsupported file type %q: only images and videos are allowed", f.ContentType),
			})
			continue
		}
		if f.Size > MaxAttachmentSize {
			rejected = append(rejected, RejectedAttachment{
				Name:   f.Name,
				Reason: "file is too large: the limit is 50 MiB",
			})
			continue
		}
		if isDuplicate(accepted, f) {
			rejected = append(rejected, RejectedAttachment{
				Name:   f.Name,
				Reason: "duplicate file",
			})
			continue
		}
		accepted = append(accepted, f)
	}
	return accepted, rejected
}

// isDuplicate requires the whole identity tuple to match; changing any
// one component makes files distinct.
func isDuplicate(existing []Attachment, f Attachment) bool {
	for _, e := range existing {
		if e.Name == f.Name &&
			e.Size == f.Size &&
			strings.EqualFold(e.ContentType, f.ContentType) &&
			e.LastModified == f.LastModified {
			return true
		}
	}
	return false
}

// MediaKind classifies a MIME type for rendering purposes.
func MediaKind(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "other"
	}
}
