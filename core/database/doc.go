// Package database manages the optional MySQL connection used by the
// exchange-history feature.
//
// The connection is established with GORM and verified with a ping at
// startup. A failure to connect is not fatal: the server logs a warning and
// keeps serving without history support.
package database
