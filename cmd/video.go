package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prezo/pkg/ui"
)

var (
	videoCategory  string
	videoFolder    string
	videoFinishYes bool
)

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Server-side video assembly",
}

var videoGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a folder's video from its images and narration",
	Long: `Ask the backend to assemble a video for one folder.

The folder must already have images and narration; both are checked
against live listings before the request is sent.`,
	Args: cobra.NoArgs,
	RunE: runVideoGenerate,
}

var videoMergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Concatenate all videos in the global collection",
	Long: `Merge every video in the global collection into one output, with
background music when the backend has one configured. The collection
itself is left untouched; the merged file is added to it.`,
	Args: cobra.NoArgs,
	RunE: runVideoMerge,
}

var videoFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Clear the global video collection",
	Long: `Delete every video in the global collection. This does not depend on
a merge having run and cannot be undone from the client.`,
	Args: cobra.NoArgs,
	RunE: runVideoFinish,
}

func init() {
	videoGenerateCmd.Flags().StringVarP(&videoCategory, "category", "c", "", "Category id or name (fuzzy picker when omitted)")
	videoGenerateCmd.Flags().StringVarP(&videoFolder, "folder", "f", "", "Folder name (required)")
	videoGenerateCmd.MarkFlagRequired("folder")
	videoFinishCmd.Flags().BoolVarP(&videoFinishYes, "yes", "y", false, "Skip confirmation")

	videoCmd.AddCommand(videoGenerateCmd)
	videoCmd.AddCommand(videoMergeCmd)
	videoCmd.AddCommand(videoFinishCmd)
}

func runVideoGenerate(cmd *cobra.Command, args []string) error {
	category, err := pickCategory(videoCategory)
	if err != nil {
		return err
	}
	ctx := getContext()
	fmt.Println(ui.FormatInfo("Generating video... this can take a while"))
	result, err := videoService.Generate(ctx, category.ID, videoFolder)
	if err != nil {
		return reportActionError(err)
	}
	fmt.Println(ui.FormatSuccess(result.Message))
	if result.OutputPath != "" {
		fmt.Println(ui.RenderKeyValue("Output", result.OutputPath))
	}
	return nil
}

func runVideoMerge(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	videos, err := mediaService.ListVideos(ctx)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		fmt.Println(ui.FormatError("No videos to merge"))
		fmt.Println(ui.FormatInfo("Upload videos first with 'prezo videos upload'"))
		return nil
	}

	names := make([]string, len(videos))
	for i, v := range videos {
		names[i] = v.Name
	}
	fmt.Println(ui.FormatTitle("Merge order"))
	fmt.Print(ui.RenderNumberedList(names))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Merging videos..."))

	result, err := videoService.Merge(ctx)
	if err != nil {
		return reportActionError(err)
	}
	fmt.Println(ui.FormatSuccess(result.Message))
	if result.OutputFilePath != "" {
		fmt.Println(ui.RenderKeyValue("Output", result.OutputFilePath))
	}
	return nil
}

func runVideoFinish(cmd *cobra.Command, args []string) error {
	if cfg.ConfirmFinish && !videoFinishYes {
		if !confirm("Delete ALL videos in the upload collection?") {
			fmt.Println(ui.FormatMuted("Cancelled"))
			return nil
		}
	}
	ctx := getContext()
	if err := videoService.Finish(ctx); err != nil {
		return reportActionError(err)
	}
	fmt.Println(ui.FormatSuccess("Video collection cleared"))
	return nil
}
