package find

// Find walks the tree rooted at root depth-first in pre-order (the
// root is tested before its descendants, children in stored order)
// and returns every node for which pred returns true, in traversal
// order. The predicate is invoked exactly once per node. A nil root
// yields an empty result.
func Find(root *File, pred Predicate) []*File {
	var out []*File
	if root == nil {
		return out
	}
	dfs(root, pred, &out)
	return out
}

func dfs(f *File, pred Predicate, out *[]*File) {
	if pred(f) {
		*out = append(*out, f)
	}
	for _, child := range f.children {
		dfs(child, pred, out)
	}
}
