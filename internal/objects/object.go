package objects

import "github.com/mygit-vcs/mygit/utils"

// Object represents any mygit object that can be stored
// All mygit objects (blobs, trees, commits) must implement this interface
type Object interface {
	// Type returns the object type tag used in the storage header
	Type() utils.ObjectType

	// Hash returns the SHA-1 key of the object
	Hash() string

	// Content returns the raw object payload without the header
	Content() []byte
}
