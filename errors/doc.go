// Package errors provides structured error handling for the GitLab client.
//
// It extends the standard library with string error codes, a retryable vs
// permanent classification, and context metadata, while staying fully
// compatible with errors.Is, errors.As, and errors.Unwrap.
//
// Creating errors:
//
//	err := errors.New(errors.CodeNotFound, "merge request not found")
//	err := errors.Newf(errors.CodeInvalidInput, "unknown merge request state %q", raw)
//
// Wrapping failures from lower layers:
//
//	data, err := provider.GetProject(ctx, path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "failed to fetch project")
//	}
//
// Callers branch on codes, not messages:
//
//	if errors.GetCode(err) == errors.CodeConflict {
//	    // The merge request cannot be merged as it stands.
//	}
//
// Every code carries a default classification, so callers can ask
// errors.IsRetryable(err) without enumerating codes. The classification is
// advisory; nothing in this module retries on its own.
package errors
