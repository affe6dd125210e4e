// Package errors provides structured errors for filesystem operations.
//
// Every error carries a code describing what went wrong (NOT_FOUND,
// ALREADY_EXISTS, NOT_A_DIRECTORY, ...), a classification telling callers
// whether retrying could help, a human-readable message and optional context
// metadata such as the paths involved. Errors remain compatible with the
// standard library: errors.Is, errors.As and errors.Unwrap traverse the chain,
// so checks like errors.Is(err, fs.ErrNotExist) keep working after wrapping.
//
// # Creating errors
//
//	err := errors.New(errors.CodeInvalidInput, "pattern must not be empty")
//	err := errors.Newf(errors.CodeNotADirectory, "%s is not a directory", path)
//
// # Wrapping filesystem errors
//
// FromOS inspects an error returned by the os or io/fs packages (or a vfs
// provider) and picks the matching code:
//
//	if err := fsys.Remove(path); err != nil {
//	    return errors.WithContext(errors.FromOS(err, "failed to remove file"), "path", path)
//	}
//
// # Classification
//
// Only BUSY is retryable by default; it covers EBUSY and EAGAIN, which usually
// clear on their own. Everything else is permanent.
//
//	if errors.IsRetryable(err) {
//	    time.Sleep(backoff)
//	}
package errors
