package objects

import (
	"bytes"
	"fmt"

	"github.com/mygit-vcs/mygit/utils"
)

// InspectMode selects what Inspect reports about an object.
// Besides the three query modes below, any valid object type name acts as an
// exact-type mode: the raw content is returned only if the stored object has
// that type, otherwise the inspection fails with ErrTypeMismatch.
type InspectMode string

const (
	// InspectType reports the object's type tag.
	InspectType InspectMode = "type"

	// InspectSize reports the byte length of the object's content.
	InspectSize InspectMode = "size"

	// InspectPretty renders the object for humans: raw bytes for blobs and
	// commits, a decoded entry listing for trees.
	InspectPretty InspectMode = "pretty"
)

// Inspect resolves reference (a full hash or unique prefix), reads the
// object and renders it according to mode. The returned bytes are ready to
// write to stdout; query modes end in a newline, content modes are the raw
// payload.
func (store *ObjectStore) Inspect(reference string, mode InspectMode) ([]byte, error) {
	hash, err := store.Resolve(reference)
	if err != nil {
		return nil, err
	}

	objType, content, err := store.Read(hash)
	if err != nil {
		return nil, err
	}

	switch mode {
	case InspectType:
		return []byte(string(objType) + "\n"), nil

	case InspectSize:
		return []byte(fmt.Sprintf("%d\n", len(content))), nil

	case InspectPretty:
		if objType == utils.TreeObjectType {
			return renderTreeListing(content)
		}
		// Blobs and commits are already human-readable text
		return content, nil
	}

	// Exact-type modes: "blob", "tree", "commit"
	if wantType := utils.ObjectType(mode); wantType.IsValid() {
		if objType != wantType {
			return nil, fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, wantType, objType)
		}
		return content, nil
	}

	return nil, fmt.Errorf("unsupported inspect mode %q", mode)
}

// renderTreeListing formats a tree payload one entry per line:
// <mode> <type> <hash>\t<name>
func renderTreeListing(content []byte) ([]byte, error) {
	entries, err := ParseTree(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tree entries: %w", err)
	}

	var buf bytes.Buffer
	for _, entry := range entries {
		fmt.Fprintf(&buf, "%s %s %s\t%s\n", entry.Mode(), entry.EntryType(), entry.Hash(), entry.Name())
	}
	return buf.Bytes(), nil
}
