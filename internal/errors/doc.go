// Package errors provides the structured error type used across the API.
//
// It offers:
//   - Structured errors with codes, messages, and metadata
//   - HTTP response mapping for the gin handlers
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("story not found")
//	err := errors.InvalidArgumentf("invalid mode: %s", mode)
//
// Adding metadata:
//
//	err := errors.NotFound("story not found").
//	    WithMeta("story_id", storyID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get story")
//	}
//
// Changing error semantics at a boundary:
//
//	if err := client.Get(ctx, key).Err(); err != nil {
//	    if err == redis.Nil {
//	        return errors.WrapWithCode(err, errors.CodeNotFound, "story not found")
//	    }
//	    return errors.Wrap(err, "storage error")
//	}
//
// # Error Checking
//
// Use the typed helpers rather than string matching:
//
//	if errors.IsNotFound(err) {
//	    // treat as absent
//	}
//
// # Validation
//
// Accumulate field errors and build a single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("ownerID", input.OwnerID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # HTTP Responses
//
// Handlers hand any error to AbortWithError, which maps the code to a
// status and writes a JSON body; uncoded errors become a bare INTERNAL.
package errors
