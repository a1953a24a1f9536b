// Package fracindex generates order-preserving decimal position markers
// ("fractional indexes") for ordered collections. A new index can always be
// placed between two existing ones, so items are inserted, appended and moved
// without renumbering their neighbours.
//
// Indexes are decimal strings and order numerically, not as strings.
// Generated values carry 10 or 15 decimals depending on the path taken and
// tail insertions grow past 1, so plain string comparison puts "9.9990000000"
// after "10.0000000000". Use Compare, Less or Sort, or store SortKey when the
// backing store orders keys bytewise.
//
// The package keeps no registry of issued indexes: storing them and resolving the
// rare duplicate are left to the caller.
//
//	g, _ := fracindex.New(fracindex.WithSource(fracindex.NewSeededSource(1)))
//	first, _ := g.Generate("", "")        // empty list
//	second, _ := g.Generate(first, "")    // append
//	mid, _ := g.Generate(first, second)   // insert between
package fracindex

var std = MustNew()

// Generate calls Generator.Generate on the default Generator.
func Generate(prev, next string) (string, error) {
	return std.Generate(prev, next)
}

// GenerateMany calls Generator.GenerateMany on the default Generator.
func GenerateMany(prev, next string, count int) ([]string, error) {
	return std.GenerateMany(prev, next, count)
}

// GenerateRelocation calls Generator.GenerateRelocation on the default Generator.
func GenerateRelocation(prev, next string, count int, distributeEvenly bool) ([]string, error) {
	return std.GenerateRelocation(prev, next, count, distributeEvenly)
}

// Relocate is GenerateRelocation with even distribution.
func Relocate(prev, next string, count int) ([]string, error) {
	return std.GenerateRelocation(prev, next, count, true)
}
