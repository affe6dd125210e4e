package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a file or folder does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the destination of a create, copy, move or
	// rename is already taken.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeNotADirectory indicates a folder operation was given something else.
	CodeNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeNotAFile indicates a file operation was given something else.
	CodeNotAFile ErrorCode = "NOT_A_FILE"

	// CodeNotEmpty indicates a directory still has children.
	CodeNotEmpty ErrorCode = "DIRECTORY_NOT_EMPTY"

	// Permission errors.

	// CodeForbidden indicates the process lacks permission for the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeCancelled indicates the user declined a confirmation prompt.
	CodeCancelled ErrorCode = "CANCELLED"

	// Content errors.

	// CodeEncodeFailed indicates data could not be serialized or encoded.
	CodeEncodeFailed ErrorCode = "ENCODE_FAILED"

	// CodeDecodeFailed indicates file contents could not be parsed or decoded.
	CodeDecodeFailed ErrorCode = "DECODE_FAILED"

	// Infrastructure errors.

	// CodeBusy indicates the resource is temporarily busy (EBUSY, EAGAIN).
	CodeBusy ErrorCode = "BUSY"

	// CodeIO indicates a generic input/output failure.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeUnsupported indicates the filesystem provider cannot perform the
	// operation (for example, chmod on an in-memory filesystem).
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeExecutionFailed indicates an external command failed.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
