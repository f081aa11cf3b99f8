// Package testdata carries a small synthetic Huorong log used to validate
// parsing against a whole-file fixture rather than hand-built fragments.
package testdata

import _ "embed"

//go:embed sample.log
var sample string

// Known totals of sample.log, for assertions.
const (
	SampleEntries = 5
	SampleBlocked = 3
)

// Sample returns the fixture log: five entries across four distinct files,
// three hours of day, and four target categories.
func Sample() string {
	return sample
}
