package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"prezo/internal/core/domain"
	"prezo/pkg/ui"
)

// pickCategory resolves a category from an optional argument. With no
// argument it opens a fuzzy finder over the listing; with one it
// matches by id first, then by exact name.
func pickCategory(arg string) (*domain.Category, error) {
	ctx := getContext()
	categories, err := categoryService.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, errors.New("no categories found")
	}

	if arg == "" {
		if cfg.DefaultCategory != "" {
			arg = cfg.DefaultCategory
		} else {
			idx, err := fuzzyfinder.Find(
				categories,
				func(i int) string { return categories[i].Name },
				fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
					if i == -1 {
						return ""
					}
					return fmt.Sprintf("Category\n\nName: %s\nID: %s",
						categories[i].Name, categories[i].ID)
				}),
			)
			if err != nil {
				return nil, err
			}
			return &categories[idx], nil
		}
	}

	for i := range categories {
		if categories[i].ID == arg {
			return &categories[i], nil
		}
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, arg) {
			return &categories[i], nil
		}
	}
	return nil, fmt.Errorf("category not found: %s", arg)
}

// confirm asks a yes/no question on stdin.
func confirm(prompt string) bool {
	fmt.Print(ui.FormatWarning(prompt + " [y/N]: "))
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// reportActionError prints the right local message for an action
// failure: validation problems inline, duplicate submissions as a
// warning, request failures briefly (the gateway already toasted the
// server message).
func reportActionError(err error) error {
	switch {
	case domain.IsValidation(err):
		fmt.Println(ui.FormatError(err.Error()))
		return nil
	case errors.Is(err, domain.ErrDuplicateAction):
		fmt.Println(ui.FormatWarning("That action is already running, try again once it finishes"))
		return nil
	default:
		return err
	}
}
