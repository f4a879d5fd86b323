package objects

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mygit-vcs/mygit/internal/constants"
	"github.com/mygit-vcs/mygit/utils"
)

var objectsRelativeFilePath string = filepath.Join(constants.Mygit, constants.Objects)

// ObjectStore manages durable, deduplicated storage of mygit objects under
// <repo>/.mygit/objects. Keys are SHA-1 digests of the framed object, and
// each object lives at <first 2 hex chars>/<remaining 38 hex chars>.
//
// Stores are safe for concurrent use: installs go through a temp file and an
// atomic rename, so readers only ever see complete objects and concurrent
// writers of identical content converge on a single file.
type ObjectStore struct {
	repoPath string // Path to repository root
}

func NewObjectStore(repoPath string) *ObjectStore {
	return &ObjectStore{
		repoPath: repoPath,
	}
}

// Put frames and stores raw content under its content key and returns the
// key. Writing content that is already stored is a no-op returning the
// existing key; this is the normal deduplication path, not an error.
func (store *ObjectStore) Put(objType utils.ObjectType, content []byte) (string, error) {
	framed, err := Frame(objType, content)
	if err != nil {
		return "", err
	}

	hash, err := ComputeKey(objType, content)
	if err != nil {
		return "", err
	}

	objectDir := filepath.Join(store.repoPath, objectsRelativeFilePath, hash[:constants.HashDirPrefixLength])
	objectFile := filepath.Join(objectDir, hash[constants.HashDirPrefixLength:])

	// Check if object already exists (content-addressable)
	_, err = os.Stat(objectFile)
	if err == nil {
		slog.Debug("Object with this hash already exists",
			"hash", hash)
		return hash, nil
	}
	if !(errors.Is(err, fs.ErrNotExist)) {
		return "", err
	}

	if err := os.MkdirAll(objectDir, constants.DirPerms); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	compressedData, err := Compress(framed)
	if err != nil {
		return "", fmt.Errorf("failed to compress object: %w", err)
	}

	if err := store.installObject(objectFile, compressedData); err != nil {
		return "", err
	}

	return hash, nil
}

// installObject places compressed object bytes at their final path through a
// temp file and an atomic rename, so a crash mid-write never leaves a partial
// object visible. Temp files live directly under objects/, outside the shard
// directories that Resolve scans.
func (store *ObjectStore) installObject(objectFile string, compressedData []byte) error {
	objectsDir := filepath.Join(store.repoPath, objectsRelativeFilePath)

	tmpFile, err := os.CreateTemp(objectsDir, constants.TmpObjectPattern)
	if err != nil {
		return fmt.Errorf("failed to create temp object file: %w", err)
	}
	tmpPath := tmpFile.Name()

	installed := false
	defer func() {
		if !installed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(compressedData); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write object file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp object file: %w", err)
	}

	// A concurrent Put of the same content may have installed the object
	// while we were writing; the existing file is identical by construction.
	if _, err := os.Stat(objectFile); err == nil {
		slog.Debug("Object installed concurrently",
			"path", objectFile)
		installed = true
		return nil
	}

	if err := os.Rename(tmpPath, objectFile); err != nil {
		return fmt.Errorf("failed to install object file: %w", err)
	}

	installed = true
	return nil
}

// Store saves an object to .mygit/objects/<first 2 chars>/<rest>
func (store *ObjectStore) Store(obj Object) error {
	_, err := store.Put(obj.Type(), obj.Content())
	return err
}

// Read loads the object stored under hash and returns its type and content.
// Missing objects fail with ErrNotFound; damaged ones surface the codec's
// ErrCorruptObject, ErrMalformedHeader or ErrSizeMismatch unchanged.
func (store *ObjectStore) Read(hash string) (utils.ObjectType, []byte, error) {
	objectFile := filepath.Join(store.repoPath, objectsRelativeFilePath,
		hash[:constants.HashDirPrefixLength], hash[constants.HashDirPrefixLength:])

	compressedData, err := os.ReadFile(objectFile)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, fmt.Errorf("%w: %s", ErrNotFound, hash)
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to read object file %s: %w", hash, err)
	}

	framed, err := Decompress(compressedData)
	if err != nil {
		return "", nil, err
	}

	return Unframe(framed)
}

// ReadBlob reads an object by hash and returns it as a blob.
// Fails with ErrTypeMismatch if the stored object is not a blob.
func (store *ObjectStore) ReadBlob(hash string) (*Blob, error) {
	objType, content, err := store.Read(hash)
	if err != nil {
		return nil, err
	}

	if objType != utils.BlobObjectType {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, utils.BlobObjectType, objType)
	}

	return NewBlob(content), nil
}

// Resolve maps a full hash or a unique hex prefix to the full hash of a
// stored object. Prefixes must be at least two characters (enough to select
// a shard directory); only the matching shard is scanned, never the whole
// store. Zero matches fail with ErrNotFound, multiple matches with an
// AmbiguousPrefixError listing every candidate.
func (store *ObjectStore) Resolve(reference string) (string, error) {
	reference = strings.ToLower(reference)

	if len(reference) < constants.MinReferencePrefixLength || len(reference) > constants.HashStringLength {
		return "", fmt.Errorf("%w: %q must be %d-%d hex characters",
			ErrInvalidReference, reference, constants.MinReferencePrefixLength, constants.HashStringLength)
	}
	if !isHexString(reference) {
		return "", fmt.Errorf("%w: %q is not a hex string", ErrInvalidReference, reference)
	}

	// Full hash: direct lookup, no directory scan
	if len(reference) == constants.HashStringLength {
		if !store.Exists(reference) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, reference)
		}
		return reference, nil
	}

	shard := reference[:constants.HashDirPrefixLength]
	rest := reference[constants.HashDirPrefixLength:]

	shardDir := filepath.Join(store.repoPath, objectsRelativeFilePath, shard)
	dirEntries, err := os.ReadDir(shardDir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, reference)
	}
	if err != nil {
		return "", fmt.Errorf("failed to scan shard directory %s: %w", shard, err)
	}

	var matches []string
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if len(name) != constants.HashStringLength-constants.HashDirPrefixLength {
			continue
		}
		if strings.HasPrefix(name, rest) {
			matches = append(matches, shard+name)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, reference)
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousPrefixError{Prefix: reference, Candidates: matches}
	}
}

// Exists checks if an object exists in storage
func (s *ObjectStore) Exists(hash string) bool {
	objectFile := filepath.Join(s.repoPath, objectsRelativeFilePath,
		hash[:constants.HashDirPrefixLength], hash[constants.HashDirPrefixLength:])
	_, err := os.Stat(objectFile)
	return !(errors.Is(err, fs.ErrNotExist))
}

func isHexString(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
