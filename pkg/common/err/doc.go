// Package err provides the error base shared by every coderoast package.
//
// # Usage Patterns
//
// Each package wraps the base error in its own type and keeps a package name
// plus its codes as constants:
//
//	const (
//	    pkgName             = "insults"
//	    CodeUnknownCategory = "UNKNOWN_CATEGORY"
//	)
//
//	type UnknownCategoryError struct {
//	    base     *err.Error
//	    Category string
//	}
//
// Checking uses the standard library:
//
//	if err.IsCode(e, insults.CodeUnknownCategory) {
//	    // offer the list of categories instead
//	}
//
//	var uc *insults.UnknownCategoryError
//	if errors.As(e, &uc) {
//	    fmt.Println(uc.Category)
//	}
//
// # Error Codes
//
// Codes follow the UPPER_SNAKE_CASE convention. Shared codes live here
// (CodeNotFound, CodeValidation, ...); packages add their own as needed.
package err
