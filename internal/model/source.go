package model

// Path represents a file system path.
type Path string

// File is a file on disk together with a fingerprint of its content.
type File struct {
	Path Path
	Hash string
}

// Source is a Lua file selected for renaming.
type Source struct {
	Origin *File
}
