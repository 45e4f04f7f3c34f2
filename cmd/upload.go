package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"prezo/internal/core/domain"
	"prezo/internal/core/services"
	"prezo/pkg/ui"
)

var (
	uploadCategory string
	uploadFolder   string
	uploadWatch    string
)

var uploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Upload images into a folder",
	Long: `Upload still images into a presentation folder.

Files outside the image allow-list (.jpg, .jpeg, .png, .gif) are dropped
from the batch with a single notice. With --watch, a directory is
monitored and new valid images are uploaded as they appear.

Examples:
  prezo upload slide1.png slide2.png --category Demo --folder intro
  prezo upload --watch ./exports --category Demo --folder intro`,
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadCategory, "category", "c", "", "Category id or name (fuzzy picker when omitted)")
	uploadCmd.Flags().StringVarP(&uploadFolder, "folder", "f", "", "Folder name (required)")
	uploadCmd.Flags().StringVarP(&uploadWatch, "watch", "w", "", "Watch a directory and upload new images")
	uploadCmd.MarkFlagRequired("folder")
}

func runUpload(cmd *cobra.Command, args []string) error {
	category, err := pickCategory(uploadCategory)
	if err != nil {
		return err
	}
	if uploadWatch != "" {
		return watchAndUpload(category.ID, uploadFolder, uploadWatch)
	}
	if len(args) == 0 {
		fmt.Println(ui.FormatError("No files given; pass image paths or use --watch"))
		return nil
	}
	return uploadBatch(category.ID, uploadFolder, args)
}

func uploadBatch(categoryID, folder string, files []string) error {
	ctx := getContext()
	resp, err := mediaService.UploadImages(ctx, services.UploadImagesRequest{
		CategoryID: categoryID,
		Folder:     folder,
		Files:      files,
	})
	if err != nil {
		return reportActionError(err)
	}
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Uploaded %d image(s) to %s", len(resp.Uploaded), folder)))
	if len(resp.Rejected) > 0 {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("Skipped %d file(s): %s",
			len(resp.Rejected), strings.Join(resp.Rejected, ", "))))
	}
	return nil
}

func watchAndUpload(categoryID, folder, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	fmt.Println(ui.FormatInfo("Watching for new images: " + dir))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Println()

	// Debounce so a burst of exported files goes up as one batch.
	debounce := time.Duration(cfg.WatchDebounceMS) * time.Millisecond
	var (
		mu           sync.Mutex
		pendingFiles []string
		timer        *time.Timer
	)

	flush := func() {
		mu.Lock()
		batch := pendingFiles
		pendingFiles = nil
		mu.Unlock()
		if len(batch) == 0 {
			return
		}
		if err := uploadBatch(categoryID, folder, batch); err != nil {
			fmt.Println(ui.FormatError("Upload failed: " + err.Error()))
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			base := filepath.Base(event.Name)
			if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~") {
				continue
			}
			if !domain.IsImageFile(base) {
				continue
			}

			mu.Lock()
			if !containsFile(pendingFiles, event.Name) {
				pendingFiles = append(pendingFiles, event.Name)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, flush)
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println(ui.FormatWarning("Watcher error: " + err.Error()))

		case <-stop:
			fmt.Println()
			fmt.Println(ui.FormatMuted("Watch stopped"))
			return nil
		}
	}
}

func containsFile(files []string, name string) bool {
	for _, f := range files {
		if f == name {
			return true
		}
	}
	return false
}
