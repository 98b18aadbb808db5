package find

import "errors"

// ErrNotDirectory is returned by AddChild when the receiver is a plain file.
var ErrNotDirectory = errors.New("find: not a directory")

// File is a node in an in-memory file tree. A directory owns its
// children in insertion order; a plain file never has children.
// The directory flag is fixed at construction. The tree must be
// acyclic; cycles are undefined behavior.
type File struct {
	name     string
	size     int64
	dir      bool
	children []*File
}

// NewFile constructs a plain file node.
func NewFile(name string, size int64) *File {
	return &File{name: name, size: size}
}

// NewDir constructs a directory node. Directory sizes are carried but
// not interpreted by any built-in predicate.
func NewDir(name string) *File {
	return &File{name: name, dir: true}
}

// AddChild appends child to the directory's ordered children.
// Plain files reject children with ErrNotDirectory.
func (f *File) AddChild(child *File) error {
	if !f.dir {
		return ErrNotDirectory
	}
	f.children = append(f.children, child)
	return nil
}

// Name returns the node name.
func (f *File) Name() string { return f.name }

// Size returns the node size in bytes.
func (f *File) Size() int64 { return f.size }

// IsDir reports whether the node is a directory.
func (f *File) IsDir() bool { return f.dir }

// Children returns the node's children in stored order.
// Plain files always return an empty slice.
func (f *File) Children() []*File { return f.children }
