// Package kernel contains shared value objects used across the domain model.
// It currently holds the Page descriptor that slices and orders repository
// result sets.
package kernel
