package vision

import "context"

// PlateDetector extracts a license plate string from a raw vehicle image.
// An empty plate with a nil error means the detector ran but found nothing;
// callers treat that as a hold, not a failure.
type PlateDetector interface {
	Detect(ctx context.Context, image []byte, filename string) (string, error)
	Healthy(ctx context.Context) bool
}
