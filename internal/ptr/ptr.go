// Package ptr provides pointer helpers for optional fields, in the style
// of k8s.io/utils/ptr.
package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or def when p is nil.
func Deref[T any](p *T, def T) T {
	if p != nil {
		return *p
	}
	return def
}

// ToString converts a pointer to a string-based type (such as a domain
// enum) to its string value. A nil pointer yields the empty string.
func ToString[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}
