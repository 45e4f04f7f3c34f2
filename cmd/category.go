package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"prezo/pkg/ui"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage presentation categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Args:  cobra.NoArgs,
	RunE:  runCategoryList,
}

var categoryCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryCreate,
}

var categoryShowCmd = &cobra.Command{
	Use:   "show [id|name]",
	Short: "Show one category",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCategoryShow,
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename [id|name] [new-name]",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryRename,
}

var (
	categoryDeleteYes bool
)

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete [id|name]",
	Short: "Delete a category",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCategoryDelete,
}

func init() {
	categoryDeleteCmd.Flags().BoolVarP(&categoryDeleteYes, "yes", "y", false, "Skip confirmation")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryCreateCmd)
	categoryCmd.AddCommand(categoryShowCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	categories, err := categoryService.List(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Println(ui.FormatWarning("No categories yet"))
		fmt.Println(ui.FormatInfo("Run 'prezo category create <name>' to add one"))
		return nil
	}
	sort.Slice(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})

	table := ui.NewTable([]ui.TableColumn{
		{Header: "NAME", Width: 24},
		{Header: "ID"},
	})
	for _, c := range categories {
		table.AddRow([]string{c.Name, c.ID})
	}
	fmt.Println(ui.FormatTitle("Categories"))
	fmt.Println()
	fmt.Print(table.Render())
	return nil
}

func runCategoryCreate(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	created, err := categoryService.Create(ctx, args[0])
	if err != nil {
		return reportActionError(err)
	}
	fmt.Println(ui.FormatSuccess("Category created"))
	fmt.Println(ui.RenderKeyValue("Name", created.Name))
	if created.ID != "" {
		fmt.Println(ui.RenderKeyValue("ID", created.ID))
	}
	return nil
}

func runCategoryShow(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	category, err := pickCategory(arg)
	if err != nil {
		return err
	}
	fmt.Println(ui.RenderKeyValue("Name", category.Name))
	fmt.Println(ui.RenderKeyValue("ID", category.ID))
	return nil
}

func runCategoryRename(cmd *cobra.Command, args []string) error {
	category, err := pickCategory(args[0])
	if err != nil {
		return err
	}
	ctx := getContext()
	if err := categoryService.Rename(ctx, category.ID, args[1]); err != nil {
		return reportActionError(err)
	}
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Renamed %q to %q", category.Name, strings.TrimSpace(args[1]))))
	return nil
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	category, err := pickCategory(arg)
	if err != nil {
		return err
	}
	if !categoryDeleteYes && !confirm(fmt.Sprintf("Delete category %q and everything in it?", category.Name)) {
		fmt.Println(ui.FormatMuted("Cancelled"))
		return nil
	}
	ctx := getContext()
	if err := categoryService.Delete(ctx, category.ID); err != nil {
		return reportActionError(err)
	}
	fmt.Println(ui.FormatSuccess("Category deleted: " + category.Name))
	return nil
}
