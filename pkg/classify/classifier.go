// Package classify maps failures to insult categories.
//
// Classification happens in two steps: KindOf inspects a panic value or an
// error and names its Kind, then Classifier.Classify looks the Kind up in a
// static table. Both steps are total: anything unrecognized ends up in the
// general category, so roasting never fails for lack of a category.
package classify

import (
	"sort"

	"github.com/utkarsh5026/coderoast/pkg/insults"
)

// Fallback is the category returned for kinds missing from the table.
const Fallback = insults.CategoryGeneral

// builtinTable is the static kind → category mapping.
var builtinTable = map[Kind]string{
	KindDivideByZero:    insults.CategoryMath,
	KindOverflow:        insults.CategoryMath,
	KindIndexOutOfRange: insults.CategoryIndex,
	KindSliceBounds:     insults.CategoryIndex,
	KindNilPointer:      insults.CategoryNil,
	KindNilMap:          insults.CategoryNil,
	KindTypeAssertion:   insults.CategoryType,
	KindUnmarshalType:   insults.CategoryType,
	KindSyntax:          insults.CategorySyntax,
	KindMissingKey:      insults.CategoryKey,
	KindInvalidValue:    insults.CategoryValue,
	KindOutOfRange:      insults.CategoryValue,
	KindNotExist:        insults.CategoryFile,
	KindExist:           insults.CategoryFile,
	KindUnexpectedEOF:   insults.CategoryFile,
	KindPermission:      insults.CategoryPermission,
	KindTimeout:         insults.CategoryTimeout,
	KindCanceled:        insults.CategoryTimeout,
	KindNetwork:         insults.CategoryNetwork,
	KindClosedChannel:   insults.CategoryConcurrency,
}

// Classifier resolves a Kind to an insult category.
type Classifier struct {
	table map[Kind]string
}

// New creates a classifier backed by the built-in table
func New() *Classifier {
	table := make(map[Kind]string, len(builtinTable))
	for kind, category := range builtinTable {
		table[kind] = category
	}
	return &Classifier{table: table}
}

// Classify returns the category for kind, or Fallback when kind is not in
// the table. It never fails.
func (c *Classifier) Classify(kind Kind) string {
	if c == nil {
		return Fallback
	}
	if category, ok := c.table[kind.Normalize()]; ok {
		return category
	}
	return Fallback
}

// ClassifyValue derives the kind of a panic value or error and classifies it.
func (c *Classifier) ClassifyValue(v any) (Kind, string) {
	kind := KindOf(v)
	return kind, c.Classify(kind)
}

// Known reports whether kind has an entry in the table.
func (c *Classifier) Known(kind Kind) bool {
	if c == nil {
		return false
	}
	_, ok := c.table[kind.Normalize()]
	return ok
}

// Kinds returns every kind in the table, sorted.
func (c *Classifier) Kinds() []Kind {
	kinds := make([]Kind, 0, len(c.table))
	for kind := range c.table {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
