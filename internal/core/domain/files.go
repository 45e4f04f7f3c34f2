package domain

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSize is the largest file the client will send in an upload
// batch. Oversized files are dropped from the selection before any
// request is built.
const MaxFileSize = 100 * 1024 * 1024 // 100MB

// Extension allow-lists. The backend accepts a wider set for some
// routes but the client only offers these.
var (
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}
	VideoExtensions = []string{".mp4"}
)

// IsImageFile reports whether the filename carries an allowed image
// extension.
func IsImageFile(name string) bool {
	return hasExtension(name, ImageExtensions)
}

// IsVideoFile reports whether the filename carries an allowed video
// extension.
func IsVideoFile(name string) bool {
	return hasExtension(name, VideoExtensions)
}

func hasExtension(name string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// FilterSelection splits a file selection into the batch that will be
// sent and the names that were dropped. Callers show a single aggregate
// notification when Rejected is non-empty, no matter how many files
// were dropped.
type FilterSelection struct {
	Accepted []string
	Rejected []string
}

// FilterFiles applies the allow-list and the size limit to a selection.
func FilterFiles(names []string, valid func(string) bool) FilterSelection {
	var sel FilterSelection
	for _, n := range names {
		if !valid(n) || oversized(n) {
			sel.Rejected = append(sel.Rejected, n)
			continue
		}
		sel.Accepted = append(sel.Accepted, n)
	}
	return sel
}

// oversized reports whether the file on disk exceeds MaxFileSize. A
// file that cannot be statted stays in the batch; the upload itself
// will report the real problem.
func oversized(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.Size() > MaxFileSize
}

// FormatFileSize renders a byte count the way the upload views show it.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	const k = 1024
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	v := float64(bytes) / math.Pow(k, float64(i))
	return fmt.Sprintf("%g %s", math.Round(v*100)/100, sizes[i])
}
