package errors

// ErrorCode identifies an application error independently of its HTTP status
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002

	// Upload
	ErrorCode_UPLOAD_NO_FILE_PART     ErrorCode = 2000
	ErrorCode_UPLOAD_NO_SELECTED_FILE ErrorCode = 2001
	ErrorCode_UPLOAD_UNSUPPORTED_TYPE ErrorCode = 2002
	ErrorCode_UPLOAD_STORAGE_FAILED   ErrorCode = 2003
	ErrorCode_MEETING_NOT_FOUND       ErrorCode = 2100
	ErrorCode_MEETING_PERSIST_FAILED  ErrorCode = 2101
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_DB_QUERY_FAILED         ErrorCode = 4000
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                 "HTTP_OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_UPLOAD_NO_FILE_PART:     "UPLOAD_NO_FILE_PART",
	ErrorCode_UPLOAD_NO_SELECTED_FILE: "UPLOAD_NO_SELECTED_FILE",
	ErrorCode_UPLOAD_UNSUPPORTED_TYPE: "UPLOAD_UNSUPPORTED_TYPE",
	ErrorCode_UPLOAD_STORAGE_FAILED:   "UPLOAD_STORAGE_FAILED",
	ErrorCode_MEETING_NOT_FOUND:       "MEETING_NOT_FOUND",
	ErrorCode_MEETING_PERSIST_FAILED:  "MEETING_PERSIST_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED: "AI_TRANSCRIPTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:         "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
