package testcases

import "seehuhn.de/go/dda"

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"simple":    lineCases(dda.ModeSimple),
	"symmetric": lineCases(dda.ModeSymmetric),
	"curve":     curveCases,
	"grid":      gridCases,
}
