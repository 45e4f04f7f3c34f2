package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"prezo/internal/core/domain"
	"prezo/pkg/ui"
)

var (
	ttsCategory string
	ttsFolder   string
	ttsFile     string
	ttsCopyURL  bool
)

var ttsCmd = &cobra.Command{
	Use:   "tts [text]",
	Short: "Synthesize narration for a folder",
	Long: `Generate speech audio from text for a presentation folder.

The result overwrites the folder's single audio.mp3; regenerating
replaces the previous narration. Text can be given inline or read from
a file with --file.

Examples:
  prezo tts "Welcome to the demo" --category Demo --folder intro
  prezo tts --file script.txt -c Demo -f intro --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTTS,
}

func init() {
	ttsCmd.Flags().StringVarP(&ttsCategory, "category", "c", "", "Category id or name (fuzzy picker when omitted)")
	ttsCmd.Flags().StringVarP(&ttsFolder, "folder", "f", "", "Folder name (required)")
	ttsCmd.Flags().StringVar(&ttsFile, "file", "", "Read the narration text from a file")
	ttsCmd.Flags().BoolVar(&ttsCopyURL, "copy", false, "Copy the audio URL to the clipboard")
	ttsCmd.MarkFlagRequired("folder")
}

func runTTS(cmd *cobra.Command, args []string) error {
	text := ""
	if len(args) > 0 {
		text = args[0]
	}
	if ttsFile != "" {
		data, err := os.ReadFile(ttsFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", ttsFile, err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		fmt.Println(ui.FormatError("Text is required"))
		return nil
	}

	category, err := pickCategory(ttsCategory)
	if err != nil {
		return err
	}

	ctx := getContext()
	if err := speechService.Generate(ctx, category.ID, ttsFolder, text); err != nil {
		return reportActionError(err)
	}

	audioURL := domain.AudioURL(cfg.BaseURL, category.ID, ttsFolder)
	fmt.Println(ui.FormatSuccess("Narration generated"))
	fmt.Println(ui.RenderKeyValue("Audio", audioURL))

	if ttsCopyURL {
		// Clipboard failure is not worth failing the command over.
		if err := clipboard.WriteAll(audioURL); err != nil {
			fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
		} else {
			fmt.Println(ui.FormatInfo("Audio URL copied to clipboard"))
		}
	}
	return nil
}
