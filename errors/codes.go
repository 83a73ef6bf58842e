package errors

// ErrorCode identifies an application error category on the wire.
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_UNAUTHENTICATED
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_INVALID_DATE
	ErrorCode_INVALID_DATE_RANGE
	ErrorCode_UPSTREAM_FAILED
	ErrorCode_UPSTREAM_RATE_LIMITED
	ErrorCode_UPSTREAM_UNAUTHORIZED
	ErrorCode_EXPORT_FAILED
	ErrorCode_NO_ENTRIES
	ErrorCode_CACHE_FAILED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                "UNKNOWN",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_UNAUTHENTICATED:        "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_INVALID_DATE:           "INVALID_DATE",
	ErrorCode_INVALID_DATE_RANGE:     "INVALID_DATE_RANGE",
	ErrorCode_UPSTREAM_FAILED:        "UPSTREAM_FAILED",
	ErrorCode_UPSTREAM_RATE_LIMITED:  "UPSTREAM_RATE_LIMITED",
	ErrorCode_UPSTREAM_UNAUTHORIZED:  "UPSTREAM_UNAUTHORIZED",
	ErrorCode_EXPORT_FAILED:          "EXPORT_FAILED",
	ErrorCode_NO_ENTRIES:             "NO_ENTRIES",
	ErrorCode_CACHE_FAILED:           "CACHE_FAILED",
}

// String returns the wire name for the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
