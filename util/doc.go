// Package util provides generic utility functions for fillkit packages.
//
// It includes map and slice helpers, pointer helpers, and parsing of
// human-readable size strings used by the file-size guard configuration.
package util
