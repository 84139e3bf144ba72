// Package errors provides structured errors for hero-sheet.
//
// Errors carry a code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFound("sheet not found").
//	    WithMeta("sheet_id", id)
//
// Wrapping preserves the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load sheet")
//	}
//
// Checking:
//
//	if errors.IsOutOfRange(err) {
//	    // bad subtype index
//	}
//
// Config structs validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("locale", cfg.Locale, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Orchestrators return InvalidArgument for malformed input, NotFound for unknown
// sheets and fields, and OutOfRange for indexes past the end of a list. The CLI maps
// codes to process exit status through Code.ExitCode.
package errors
