// Package errors provides structured error handling for the wander-api project.
//
// Errors carry a code, a message, and optional metadata, and convert cleanly
// to gRPC status errors at the boundary.
//
// Creating errors:
//
//	err := errors.NotFound("combat session not found")
//	err := errors.InvalidArgumentf("tap degree out of range: %.1f", tapDegree)
//
// Adding metadata:
//
//	err := errors.NotFound("enemy pool not found").
//	    WithMeta("location_id", locationID)
//
// Wrapping collaborator failures:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load combat session")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // caller decides the next step
//	}
//
// Code conventions across layers:
//   - Repositories return NotFound/AlreadyExists with relevant IDs in metadata.
//   - Orchestrators return InvalidArgument for malformed input and
//     FailedPrecondition for business rule violations; collaborator failures
//     are wrapped, never retried.
//   - The transport layer converts with ToGRPCError and logs internals.
package errors
