package ports

import "context"

type UploadInfo struct {
	Bucket    string
	Key       string
	SizeBytes int64
}

// Uploader stores a rendered checklist and reports where it landed.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (UploadInfo, error)
}
