// Package utils provides loose-typed conversion helpers.
//
// The language model returns tool arguments as generic JSON values; these
// helpers coerce them into the concrete types the tool handlers expect
// without panicking on unexpected shapes.
package utils
