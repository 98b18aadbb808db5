package find

import "strings"

// Predicate is a pure boolean test over a File. Predicates must not
// mutate the tree and retain no reference to it after the call.
type Predicate func(*File) bool

// NameEquals matches nodes whose name equals name exactly.
func NameEquals(name string) Predicate {
	return func(f *File) bool { return f.name == name }
}

// HasExtension matches plain files whose name ends with ext
// (literal suffix, case-sensitive). Directories never match.
func HasExtension(ext string) Predicate {
	return func(f *File) bool {
		return !f.dir && strings.HasSuffix(f.name, ext)
	}
}

// SizeGreaterThan matches nodes strictly larger than size;
// equality does not match.
func SizeGreaterThan(size int64) Predicate {
	return func(f *File) bool { return f.size > size }
}

// IsType matches directories when dir is true, plain files otherwise.
func IsType(dir bool) Predicate {
	return func(f *File) bool { return f.dir == dir }
}

// AllOf is the conjunction of preds. It short-circuits on the first
// false; with no predicates it is vacuously true.
func AllOf(preds ...Predicate) Predicate {
	return func(f *File) bool {
		for _, p := range preds {
			if !p(f) {
				return false
			}
		}
		return true
	}
}

// AnyOf is the disjunction of preds. It short-circuits on the first
// true; with no predicates it is vacuously false.
func AnyOf(preds ...Predicate) Predicate {
	return func(f *File) bool {
		for _, p := range preds {
			if p(f) {
				return true
			}
		}
		return false
	}
}
