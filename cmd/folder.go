package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prezo/pkg/ui"
)

var folderCategory string

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage presentation folders",
}

var folderCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a folder under a category",
	Long: `Create a named workspace for one presentation's assets.

Examples:
  prezo folder create intro --category Demo
  prezo folder create chapter-1`,
	Args: cobra.ExactArgs(1),
	RunE: runFolderCreate,
}

func init() {
	folderCreateCmd.Flags().StringVarP(&folderCategory, "category", "c", "", "Category id or name (fuzzy picker when omitted)")
	folderCmd.AddCommand(folderCreateCmd)
}

func runFolderCreate(cmd *cobra.Command, args []string) error {
	category, err := pickCategory(folderCategory)
	if err != nil {
		return err
	}
	ctx := getContext()
	if err := folderService.Create(ctx, category.ID, args[0]); err != nil {
		return reportActionError(err)
	}
	fmt.Println(ui.FormatSuccess("Folder created"))
	fmt.Println(ui.RenderKeyValue("Category", category.Name))
	fmt.Println(ui.RenderKeyValue("Folder", args[0]))
	return nil
}
