// Package find matches nodes of an in-memory file tree against
// composable predicates, in the spirit of the unix find command.
//
// A tree is built from File nodes (NewFile/NewDir + AddChild).
// Built-in predicates (NameEquals, HasExtension, SizeGreaterThan,
// IsType) compose with AllOf/AnyOf, and Find collects matches in
// depth-first pre-order:
//
//	docs := find.NewDir("documents")
//	_ = docs.AddChild(find.NewFile("resume.txt", 1200))
//
//	matches := find.Find(docs, find.AllOf(
//	    find.HasExtension(".txt"),
//	    find.SizeGreaterThan(1000),
//	))
package find
