package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"prezo/pkg/ui"
)

var videosDeleteYes bool

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Manage the global video collection",
	Long: `The media library: a flat, folder-independent list of uploaded and
merged videos. Merge and finish operate over this whole collection.`,
}

var videosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List videos in the collection",
	Args:  cobra.NoArgs,
	RunE:  runVideosList,
}

var videosUploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Upload videos into the collection",
	Long: `Upload .mp4 files into the global collection. Files with other
extensions are dropped from the batch with a single notice.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVideosUpload,
}

var videosDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete one video from the collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideosDelete,
}

func init() {
	videosDeleteCmd.Flags().BoolVarP(&videosDeleteYes, "yes", "y", false, "Skip confirmation")

	videosCmd.AddCommand(videosListCmd)
	videosCmd.AddCommand(videosUploadCmd)
	videosCmd.AddCommand(videosDeleteCmd)
}

func runVideosList(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	videos, err := mediaService.ListVideos(ctx)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		fmt.Println(ui.FormatWarning("The video collection is empty"))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "#", Width: 3, Align: "right"},
		{Header: "NAME", Width: 32},
		{Header: "PATH"},
	})
	for i, v := range videos {
		table.AddRow([]string{fmt.Sprintf("%d", i+1), v.Name, v.Path})
	}
	fmt.Println(ui.FormatTitle("Video Collection"))
	fmt.Println()
	fmt.Print(table.Render())
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d video(s) ready for merging", len(videos))))
	return nil
}

func runVideosUpload(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	resp, err := mediaService.UploadVideos(ctx, args)
	if err != nil {
		return reportActionError(err)
	}
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Uploaded %d video(s)", len(resp.Uploaded))))
	if len(resp.Rejected) > 0 {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("Skipped %d file(s): %s",
			len(resp.Rejected), strings.Join(resp.Rejected, ", "))))
	}
	return nil
}

func runVideosDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !videosDeleteYes && !confirm(fmt.Sprintf("Delete video %q?", name)) {
		fmt.Println(ui.FormatMuted("Cancelled"))
		return nil
	}
	ctx := getContext()
	if err := mediaService.DeleteVideo(ctx, name); err != nil {
		return reportActionError(err)
	}
	fmt.Println(ui.FormatSuccess("Video deleted: " + name))
	return nil
}
