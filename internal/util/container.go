package util

// MergeMap copies every entry of src into dest, overwriting existing keys.
func MergeMap[K comparable, V any](dest map[K]V, src map[K]V) map[K]V {
	for k, v := range src {
		dest[k] = v
	}
	return dest
}

// RemoveDuplicates returns the distinct values of slice in first-seen order.
// The input is left untouched.
func RemoveDuplicates[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}
	seen := make(map[T]struct{}, len(slice))
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
