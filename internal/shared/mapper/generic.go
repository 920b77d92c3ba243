// Package mapper holds small generic helpers for converting between layers.
package mapper

import "fmt"

// MapSlice applies a mapper function to each element of a slice.
// Returns an empty (non-nil) slice for nil input so that JSON renders [].
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithError applies a mapper function that may fail to each element.
// Returns early on the first failure, naming the index.
func MapSliceWithError[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	result := make([]R, 0, len(items))
	for i, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item %d: %w", i, err)
		}
		result = append(result, mapped)
	}
	return result, nil
}
