package domain

import (
	"fmt"
	"strings"
)

// VideoAsset is one entry in the global video collection: uploaded
// clips and merge outputs alike. Path may be empty when the backend
// returns bare names.
type VideoAsset struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

// MediaStats summarizes a folder's stored media as reported by the
// statistics endpoint.
type MediaStats struct {
	ImageCount int   `json:"imageCount"`
	VideoCount int   `json:"videoCount"`
	TotalSize  int64 `json:"totalSize"`
}

// GenerateResult is the backend's answer to a per-folder video build.
type GenerateResult struct {
	Message    string `json:"message"`
	OutputPath string `json:"outputPath"`
}

// MergeResult is the backend's answer to a merge over the global
// collection. The collection itself is unchanged; listings must be
// refreshed to pick up the new output file.
type MergeResult struct {
	Message        string `json:"message"`
	OutputFilePath string `json:"outputFilePath"`
}

// AudioPath returns the conventional location of a folder's synthesized
// narration, relative to the API base path. The generate-TTS response
// does not return the asset; clients address it by convention.
func AudioPath(categoryID, folder string) string {
	return fmt.Sprintf("public/images/%s/%s/audio.mp3", categoryID, folder)
}

// AudioURL resolves the narration's full URL against the configured
// base URL.
func AudioURL(baseURL, categoryID, folder string) string {
	return strings.TrimRight(baseURL, "/") + "/" + AudioPath(categoryID, folder)
}
