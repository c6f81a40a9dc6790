// Package utils provides internal time helpers shared by the HTTP handlers.
// This package is not intended to be imported by external code.
package utils
