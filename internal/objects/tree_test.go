package objects

import (
	"testing"

	"github.com/mygit-vcs/mygit/utils"
)

// TREE ENTRY TESTS

func TestNewTreeEntry(t *testing.T) {
	entry, err := NewTreeEntry(ModeRegularFile, "test.txt", "abc123")

	if err != nil {
		t.Fatal("Expected New Tree Entry to be created")
	}

	if entry.Mode() != ModeRegularFile {
		t.Errorf("Expected mode %s, got %s", ModeRegularFile, entry.Mode())
	}

	if entry.Name() != "test.txt" {
		t.Errorf("Expected name 'test.txt', got %s", entry.Name())
	}

	if entry.Hash() != "abc123" {
		t.Errorf("Expected hash 'abc123', got %s", entry.Hash())
	}
}

func TestTreeEntry_IsDirectory(t *testing.T) {
	dirEntry, _ := NewTreeEntry(ModeDirectory, "src", "abc123")
	fileEntry, _ := NewTreeEntry(ModeRegularFile, "main.go", "def456")

	if !dirEntry.IsDirectory() {
		t.Fatal("Expected directory entry to be identified as directory")
	}

	if fileEntry.IsDirectory() {
		t.Fatal("Expected file entry not to be identified as directory")
	}
}

func TestTreeEntry_EntryType(t *testing.T) {
	dirEntry, _ := NewTreeEntry(ModeDirectory, "src", "abc123")
	fileEntry, _ := NewTreeEntry(ModeExecutable, "run.sh", "def456")

	if dirEntry.EntryType() != utils.TreeObjectType {
		t.Errorf("Expected directory entry type %s, got %s", utils.TreeObjectType, dirEntry.EntryType())
	}

	if fileEntry.EntryType() != utils.BlobObjectType {
		t.Errorf("Expected file entry type %s, got %s", utils.BlobObjectType, fileEntry.EntryType())
	}
}

// TREE TESTS

func TestNewTree_EmptyTree(t *testing.T) {
	tree, err := NewTree([]TreeEntry{})
	if err != nil {
		t.Fatal("Expected Tree to be created")
	}

	// Hash for empty tree
	expectedHash, err := ComputeKey(utils.TreeObjectType, []byte(""))
	if err != nil {
		t.Fatal("Expected hash to be computed")
	}

	if tree.Hash() != expectedHash {
		t.Errorf("Expected empty tree hash %s, got %s", expectedHash, tree.Hash())
	}
}

func TestNewTree_SingleEntry(t *testing.T) {
	// Create a blob first
	blob := NewBlob([]byte("test content\n"))

	entry, err := NewTreeEntry(ModeRegularFile, "test.txt", blob.Hash())
	if err != nil {
		t.Fatal("Expected FileMode to be valid")
	}

	entries := []TreeEntry{
		*entry,
	}

	tree, err := NewTree(entries)
	if err != nil {
		t.Fatalf("Expected tree to be created: %v", err)
	}

	if tree.Hash() == "" {
		t.Error("Tree hash should not be empty")
	}

	if len(tree.Entries()) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(tree.Entries()))
	}
}

func TestNewTree_SortsEntries(t *testing.T) {
	// Add entries in wrong order
	firstEntry, _ := NewTreeEntry(ModeRegularFile, "z.txt", "hash1")
	secondEntry, _ := NewTreeEntry(ModeRegularFile, "a.txt", "hash2")
	thirdEntry, _ := NewTreeEntry(ModeRegularFile, "m.txt", "hash3")
	entries := []TreeEntry{
		*firstEntry,
		*secondEntry,
		*thirdEntry,
	}

	tree, err := NewTree(entries)
	if err != nil {
		t.Fatalf("Expected tree to be created: %v", err)
	}

	sortedEntries := tree.Entries()

	// Should be sorted alphabetically
	if sortedEntries[0].Name() != "a.txt" {
		t.Errorf("Expected first entry to be 'a.txt', got %s", sortedEntries[0].Name())
	}
	if sortedEntries[1].Name() != "m.txt" {
		t.Errorf("Expected second entry to be 'm.txt', got %s", sortedEntries[1].Name())
	}
	if sortedEntries[2].Name() != "z.txt" {
		t.Errorf("Expected third entry to be 'z.txt', got %s", sortedEntries[2].Name())
	}
}

func TestTree_NestedStructure(t *testing.T) {
	// Create blobs for files
	mainBlob := NewBlob([]byte("package main\n"))
	readmeBlob := NewBlob([]byte("# Project\n"))

	// Create subtree for src/ directory
	srcEntry, _ := NewTreeEntry(ModeRegularFile, "main.go", mainBlob.Hash())
	srcEntries := []TreeEntry{
		*srcEntry,
	}
	srcTree, err := NewTree(srcEntries)
	if err != nil {
		t.Fatalf("Expected tree to be created: %v", err)
	}

	// Create root tree
	fileEntry, _ := NewTreeEntry(ModeRegularFile, "README.md", readmeBlob.Hash())
	dirEntry, _ := NewTreeEntry(ModeDirectory, "src", srcTree.Hash())
	rootEntries := []TreeEntry{
		*fileEntry,
		*dirEntry,
	}
	rootTree, err := NewTree(rootEntries)
	if err != nil {
		t.Fatalf("Expected root tree to be created: %v", err)
	}

	// Verify structure
	if len(rootTree.Entries()) != 2 {
		t.Errorf("Expected 2 entries in root tree, got %d", len(rootTree.Entries()))
	}

	// Find the src directory entry
	foundEntry, found := rootTree.FindEntry("src")
	if !found {
		t.Error("Should find 'src' directory")
	}
	if !foundEntry.IsDirectory() {
		t.Error("'src' should be identified as directory")
	}
	if foundEntry.Hash() != srcTree.Hash() {
		t.Error("src entry hash should match src tree hash")
	}
}

// PARSE TESTS

// TestParseTree_RoundTrip verifies decoding recovers the exact entries a
// tree was built from.
func TestParseTree_RoundTrip(t *testing.T) {
	blob := NewBlob([]byte("file content\n"))
	subTree := createTree(t, []TreeEntry{
		createTreeEntry(t, ModeRegularFile, "nested.txt", blob.Hash()),
	})

	entries := []TreeEntry{
		createTreeEntry(t, ModeRegularFile, "README.md", blob.Hash()),
		createTreeEntry(t, ModeExecutable, "build.sh", blob.Hash()),
		createTreeEntry(t, ModeDirectory, "src", subTree.Hash()),
	}
	tree := createTree(t, entries)

	parsed, err := ParseTree(tree.Content())
	if err != nil {
		t.Fatalf("Failed to parse tree content: %v", err)
	}

	if len(parsed) != len(tree.Entries()) {
		t.Fatalf("Expected %d entries, got %d", len(tree.Entries()), len(parsed))
	}

	for i, expected := range tree.Entries() {
		assertTreeEntryEqual(t, parsed[i], expected)
	}
}

// TestParseTree_Empty verifies an empty payload decodes to no entries.
func TestParseTree_Empty(t *testing.T) {
	entries, err := ParseTree([]byte{})
	if err != nil {
		t.Fatalf("Failed to parse empty tree: %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

// TestParseTree_Truncated verifies damaged payloads are rejected.
func TestParseTree_Truncated(t *testing.T) {
	blob := NewBlob([]byte("content\n"))
	tree := createTree(t, []TreeEntry{
		createTreeEntry(t, ModeRegularFile, "file.txt", blob.Hash()),
	})

	content := tree.Content()
	truncated := content[:len(content)-5]

	if _, err := ParseTree(truncated); err == nil {
		t.Error("Expected error for truncated tree content")
	}
}
