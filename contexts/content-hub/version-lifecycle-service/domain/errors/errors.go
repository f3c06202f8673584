package errors

import "errors"

var (
	ErrAssetNotFound          = errors.New("asset not found")
	ErrVersionNotFound        = errors.New("version not found")
	ErrInvalidAssetInput      = errors.New("invalid asset input")
	ErrInvalidVersionInput    = errors.New("invalid version input")
	ErrInvalidAssetMetadata   = errors.New("asset is missing metadata required for publish")
	ErrIllegalTransition      = errors.New("version status does not allow the requested transition")
	ErrUnknownVersionStatus   = errors.New("version status is outside the known lifecycle states")
	ErrScheduleConflict       = errors.New("another version of the asset is already scheduled")
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	ErrIdempotencyKeyConflict = errors.New("idempotency key conflict")
)
