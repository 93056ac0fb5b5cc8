// CLAUDE:SUMMARY Sentinel errors for the report pipeline: unsupported format, decode failure, oversized payload.
package reportpipe

import "errors"

// ErrUnsupportedFormat is returned when the caller declares a format tag the
// loader does not implement. Fatal for the call; never retried here.
var ErrUnsupportedFormat = errors.New("reportpipe: unsupported format")

// ErrDecode is returned when a payload cannot be parsed as its declared
// format. The caller may re-check the declared format against the content.
var ErrDecode = errors.New("reportpipe: payload decode failed")

// ErrPayloadTooLarge is returned when a payload exceeds Config.MaxPayloadSize.
var ErrPayloadTooLarge = errors.New("reportpipe: payload too large")
