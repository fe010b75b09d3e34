package application

import (
	"context"
	"io"
)

type ResourceClass string

// ResourceRaw marks opaque documents such as PDF or DOCX resumes.
const ResourceRaw ResourceClass = "raw"

// ObjectStore uploads a payload under key and returns a durable public URL.
type ObjectStore interface {
	Upload(ctx context.Context, body io.Reader, key string, class ResourceClass) (string, error)
}
