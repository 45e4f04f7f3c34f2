package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"prezo/pkg/config"
	"prezo/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set one configuration value and save the file.

Keys: base_url, request_timeout_seconds, cache_ttl_seconds,
default_category, watch_debounce_ms, color_theme, no_emoji,
confirm_finish`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.FormatTitle("Configuration"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("base_url", cfg.BaseURL))
	fmt.Println(ui.RenderKeyValue("request_timeout_seconds", strconv.Itoa(cfg.RequestTimeout)))
	fmt.Println(ui.RenderKeyValue("cache_ttl_seconds", strconv.Itoa(cfg.CacheTTLSeconds)))
	fmt.Println(ui.RenderKeyValue("default_category", cfg.DefaultCategory))
	fmt.Println(ui.RenderKeyValue("watch_debounce_ms", strconv.Itoa(cfg.WatchDebounceMS)))
	fmt.Println(ui.RenderKeyValue("color_theme", cfg.ColorTheme))
	fmt.Println(ui.RenderKeyValue("no_emoji", strconv.FormatBool(cfg.NoEmoji)))
	fmt.Println(ui.RenderKeyValue("confirm_finish", strconv.FormatBool(cfg.ConfirmFinish)))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	switch key {
	case "base_url":
		cfg.BaseURL = value
	case "request_timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid number: %s", value)
		}
		cfg.RequestTimeout = n
	case "cache_ttl_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid number: %s", value)
		}
		cfg.CacheTTLSeconds = n
	case "default_category":
		cfg.DefaultCategory = value
	case "watch_debounce_ms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid number: %s", value)
		}
		cfg.WatchDebounceMS = n
	case "color_theme":
		cfg.ColorTheme = value
	case "no_emoji":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %s", value)
		}
		cfg.NoEmoji = b
	case "confirm_finish":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %s", value)
		}
		cfg.ConfirmFinish = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Set %s = %s", key, value)))
	return nil
}
