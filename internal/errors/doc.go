// Package errors provides the coded error type used across gw2-api.
//
// Two classes of failure exist in this module. Structural contract
// violations, such as handing a nil record to a converter, are returned
// immediately as InvalidArgument errors. Upstream and storage failures are
// wrapped with context and keep the code of the error they wrap, so a
// handler can pick an HTTP status without string matching.
//
// # Basic Usage
//
//	err := errors.InvalidArgument("item record cannot be nil")
//	err := errors.NotFoundf("item %d not found", id)
//
// Adding metadata:
//
//	err := errors.NotFound("item not found").
//	    WithMeta("item_id", id).
//	    WithMeta("lang", lang)
//
// Wrapping errors:
//
//	if err := repo.Put(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to cache item")
//	}
//
// Mapping upstream responses:
//
//	code := errors.FromHTTPStatus(resp.StatusCode)
//	return errors.New(code, "item_details request failed")
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	status := code.HTTPStatus()
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
