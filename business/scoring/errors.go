package scoring

import "errors"

var (
	// ErrSubjectNotFound means the tenant or user being scored does not
	// exist. Nothing is computed or persisted when this is returned.
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrInvalidQualification means the caller passed a qualification value
	// outside the four defined tiers.
	ErrInvalidQualification = errors.New("invalid qualification")
)
