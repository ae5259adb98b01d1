// Package errors is the coded error type shared by the template store, the
// forge orchestrator and both transports.
//
// Errors carry a Code, a message that is safe to return to callers, an
// optional cause and optional metadata:
//
//	err := errors.NotFoundf("template %s not found", id).
//	    WithMeta("template_id", id)
//
// Wrapping keeps the code of an inner *Error:
//
//	if _, err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load template")
//	}
//
// Field-level validation is collected with a ValidationBuilder and surfaces as
// a single InvalidArgument error whose "validation_errors" metadata maps each
// field to its messages. ToGRPCError and Code.HTTPStatus translate codes for
// the gRPC and HTTP surfaces.
package errors
