package gateway

import (
	"context"
	"errors"
)

// Extractor is the delegation boundary to the metadata-extraction engine.
// Implementations return the record unmodified and report every failure as
// an *ExtractionError.
type Extractor interface {
	Extract(ctx context.Context, ref Reference, profile Profile) (RawRecord, error)
}

func extractionFailed(ctx context.Context, cause string, err error) *ExtractionError {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ExtractionError{Cause: causeTimeout, Err: errors.Join(ctx.Err(), err)}
	}
	if cause == "" && err != nil {
		cause = err.Error()
	}
	if cause == "" {
		cause = "extraction failed"
	}
	return &ExtractionError{Cause: cause, Err: err}
}
