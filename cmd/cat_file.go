package cmd

import (
	"fmt"

	"github.com/mygit-vcs/mygit/internal/objects"
	"github.com/mygit-vcs/mygit/utils"
	"github.com/spf13/cobra"
)

var catFileCmd = &cobra.Command{
	Use:   "cat-file (-t | -s | -p | --blob | --tree | --commit) <object>",
	Short: "Inspect the type, size or content of a stored object",
	Long: `Display information about an object in the object store.
The object is addressed by its full 40-character hash or by any unique prefix
of at least two characters.

Examples:
  # Show an object's type
  mygit cat-file -t a94a8fe5

  # Show an object's size in bytes
  mygit cat-file -s a94a8fe5

  # Pretty-print an object's content
  mygit cat-file -p a94a8fe5

  # Output raw content, failing unless the object is a blob
  mygit cat-file --blob a94a8fe5`,
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runCatFile,
}

var (
	typeFlag   bool
	sizeFlag   bool
	prettyFlag bool
	blobFlag   bool
	treeFlag   bool
	commitFlag bool
)

func init() {
	rootCmd.AddCommand(catFileCmd)

	catFileCmd.Flags().BoolVarP(&typeFlag, "type", "t", false, "Show the object's type")
	catFileCmd.Flags().BoolVarP(&sizeFlag, "size", "s", false, "Show the object's size in bytes")
	catFileCmd.Flags().BoolVarP(&prettyFlag, "pretty", "p", false, "Pretty-print the object's content")
	catFileCmd.Flags().BoolVar(&blobFlag, "blob", false, "Output raw content, expecting a blob")
	catFileCmd.Flags().BoolVar(&treeFlag, "tree", false, "Output raw content, expecting a tree")
	catFileCmd.Flags().BoolVar(&commitFlag, "commit", false, "Output raw content, expecting a commit")

	catFileCmd.MarkFlagsMutuallyExclusive("type", "size", "pretty", "blob", "tree", "commit")
	catFileCmd.MarkFlagsOneRequired("type", "size", "pretty", "blob", "tree", "commit")
}

// selectedInspectMode maps the set cat-file flag to its inspect mode.
func selectedInspectMode() objects.InspectMode {
	switch {
	case typeFlag:
		return objects.InspectType
	case sizeFlag:
		return objects.InspectSize
	case prettyFlag:
		return objects.InspectPretty
	case blobFlag:
		return objects.InspectMode(utils.BlobObjectType)
	case treeFlag:
		return objects.InspectMode(utils.TreeObjectType)
	default:
		return objects.InspectMode(utils.CommitObjectType)
	}
}

// runCatFile resolves the object reference and writes the requested
// rendering to stdout.
func runCatFile(cmd *cobra.Command, args []string) error {
	repoPath, err := findRepoRoot()
	if err != nil {
		return err
	}

	store := objects.NewObjectStore(repoPath)

	output, err := store.Inspect(args[0], selectedInspectMode())
	if err != nil {
		return err
	}

	if _, err := cmd.OutOrStdout().Write(output); err != nil {
		return fmt.Errorf("failed to write object output: %w", err)
	}
	return nil
}
