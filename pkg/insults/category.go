package insults

import "strings"

// Built-in category keys. The set is open: adding insults under any other
// key creates that category.
const (
	CategoryGeneral     = "general"
	CategorySyntax      = "syntax"
	CategoryType        = "type"
	CategoryNil         = "nil"
	CategoryIndex       = "index"
	CategoryKey         = "key"
	CategoryValue       = "value"
	CategoryMath        = "math"
	CategoryFile        = "file"
	CategoryPermission  = "permission"
	CategoryTimeout     = "timeout"
	CategoryNetwork     = "network"
	CategoryConcurrency = "concurrency"
)

// NormalizeCategory folds a category key to its canonical form.
// Keys are case-insensitive and surrounding whitespace is ignored.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
