package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mygit-vcs/mygit/internal/constants"
)

func InitRepository(path string) error {
	// Resolves and adds OS specific separator
	mygitDir := filepath.Join(path, constants.Mygit)

	if err := checkRepositoryDoesNotExist(mygitDir); err != nil {
		return err
	}

	// Track if initialization of mygit directories and files was successful
	// Default value: false
	var initSuccess bool

	// Defer a func to clean up any directories/files in the case that
	// repository initialization failed (not all directories/files were created successfully).
	// If all resources got created successfully initSuccess is true, and the clean-up
	//  is not executed
	defer func() {
		if !initSuccess {
			cleanupRepository(mygitDir)
		}
	}()

	directories := []string{
		mygitDir,
		filepath.Join(mygitDir, constants.Objects),
		filepath.Join(mygitDir, constants.Refs),
		filepath.Join(mygitDir, constants.Refs, constants.Heads),
		filepath.Join(mygitDir, constants.Refs, constants.Tags),
	}

	// Create all mygit directories
	for _, directory := range directories {
		if err := os.MkdirAll(directory, constants.DirPerms); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", directory, err)
		}
	}

	// Create HEAD file pointing to main branch
	headFile := filepath.Join(mygitDir, constants.Head)
	headContent := constants.DefaultRefPrefix + constants.DefaultBranch + "\n"

	if err := os.WriteFile(headFile, []byte(headContent), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to create HEAD file: %w", err)
	}

	initSuccess = true
	return nil
}

func checkRepositoryDoesNotExist(path string) error {
	_, err := os.Stat(path)

	// If path doesn't exist there is no error
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to check repository path: %w", err)
	}

	return fmt.Errorf("repository already exists at %s", path)
}

// Removes the entire .mygit directory if it exists
func cleanupRepository(mygitDir string) {
	if _, err := os.Stat(mygitDir); err == nil {
		slog.Debug("Cleaning up partial repository initialization",
			"path", mygitDir)

		if err := os.RemoveAll(mygitDir); err != nil {
			slog.Warn("Failed to cleanup repository directory",
				"path", mygitDir,
				"error", err)
		} else {
			slog.Debug("Successfully cleaned up repository directory",
				"path", mygitDir)
		}
	}
}
