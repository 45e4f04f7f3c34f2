package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prezo/internal/core/domain"
	"prezo/pkg/ui"
)

var (
	statusCategory string
	statusFolder   string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a folder's pipeline progress",
	Long: `Show how far a folder has come through the presentation pipeline:
images uploaded, narration generated, video generated. The checklist is
derived from live backend listings on every run, nothing is stored
locally.

Examples:
  prezo status -c Demo -f intro`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusCategory, "category", "c", "", "Category id or name (fuzzy picker when omitted)")
	statusCmd.Flags().StringVarP(&statusFolder, "folder", "f", "", "Folder name (required)")
	statusCmd.MarkFlagRequired("folder")
}

func runStatus(cmd *cobra.Command, args []string) error {
	category, err := pickCategory(statusCategory)
	if err != nil {
		return err
	}
	ctx := getContext()
	status, err := statusService.Load(ctx, category.ID, statusFolder)
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatTitle(category.Name + " / " + statusFolder))
	fmt.Println(ui.FormatMuted("Stage: " + status.Stage.String()))
	if status.Stats != nil && status.Stats.TotalSize > 0 {
		fmt.Println(ui.FormatMuted("Stored: " + domain.FormatFileSize(status.Stats.TotalSize)))
	}
	fmt.Println()
	fmt.Print(ui.RenderChecklist([]ui.ChecklistItem{
		{Label: fmt.Sprintf("Images uploaded (%d)", len(status.Images)), Done: status.Flags.HasImages},
		{Label: "Narration generated", Done: status.Flags.HasAudio},
		{Label: "Video generated", Done: status.Flags.HasVideo},
	}))

	if status.Flags.HasImages {
		fmt.Println()
		fmt.Println(ui.FormatBold("Images"))
		fmt.Print(ui.RenderSimpleList(status.Images))
	}
	if status.Flags.HasAudio {
		fmt.Println()
		fmt.Println(ui.RenderKeyValue("Audio", domain.AudioURL(cfg.BaseURL, category.ID, statusFolder)))
	}
	if !status.Flags.CanGenerateVideo() {
		fmt.Println()
		switch {
		case !status.Flags.HasImages:
			fmt.Println(ui.FormatInfo("Next: upload images with 'prezo upload'"))
		case !status.Flags.HasAudio:
			fmt.Println(ui.FormatInfo("Next: generate narration with 'prezo tts'"))
		}
	} else if !status.Flags.HasVideo {
		fmt.Println()
		fmt.Println(ui.FormatInfo("Ready: run 'prezo video generate'"))
	}
	return nil
}
