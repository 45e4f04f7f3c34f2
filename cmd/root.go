package cmd

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"prezo/internal/adapters/gateway"
	"prezo/internal/cache"
	"prezo/internal/core/services"
	"prezo/pkg/config"
	"prezo/pkg/ui"
)

var (
	// Global config
	cfg        *config.Config
	configPath string

	// Notifier (toast analog; gateway failures land here too)
	notifier *ui.Notifier

	// Services
	categoryService *services.CategoryService
	folderService   *services.FolderService
	mediaService    *services.MediaService
	speechService   *services.SpeechService
	videoService    *services.VideoService
	statusService   *services.StatusService

	// Shared client-side state
	queryCache  *cache.Cache
	actionGuard *cache.Guard

	// Gateway
	apiClient *gateway.Client

	// Flags
	flagBaseURL string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prezo",
	Short: "Prezo - presentation catalog client",
	Long: ui.StyleTitle.Render("Prezo") + " - Presentation Builder\n\n" +
		"A terminal client for the presentation catalog service.\n" +
		"Organize categories and folders, upload images, synthesize narration,\n" +
		"and drive server-side video assembly.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Catalog base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")

	// Add subcommands
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(folderCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(ttsCmd)
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(videosCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(studioCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = c
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	ui.SetTheme(cfg.ColorTheme)
	if cfg.NoEmoji {
		ui.UsePlainIcons()
	}

	notifier = ui.NewNotifier()

	// Shared cache and in-flight guard
	queryCache = cache.New(time.Duration(cfg.CacheTTLSeconds) * time.Second)
	actionGuard = cache.NewGuard()

	// Gateway and resource facades
	httpClient := &http.Client{Timeout: time.Duration(cfg.RequestTimeout) * time.Second}
	apiClient = gateway.NewWithDoer(cfg.BaseURL, httpClient, notifier)
	categories := gateway.NewCategoryService(apiClient)
	folders := gateway.NewFolderService(apiClient)
	media := gateway.NewMediaService(apiClient)
	speech := gateway.NewSpeechService(apiClient)
	video := gateway.NewVideoService(apiClient)

	// Services
	categoryService = services.NewCategoryService(categories, queryCache, actionGuard)
	folderService = services.NewFolderService(folders, queryCache, actionGuard)
	mediaService = services.NewMediaService(media, queryCache, actionGuard, notifier)
	speechService = services.NewSpeechService(speech, queryCache, actionGuard)
	statusService = services.NewStatusService(media, speech, queryCache)
	videoService = services.NewVideoService(video, statusService, mediaService, queryCache, actionGuard)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
