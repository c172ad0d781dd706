package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ansikit/pkg/console"
	"github.com/alexisbeaulieu97/ansikit/pkg/style"
)

type styleFlags struct {
	fg      string
	bg      string
	formats []string
}

func addStyleFlags(cmd *cobra.Command, flags *styleFlags) {
	cmd.Flags().StringVar(&flags.fg, "fg", "", "Foreground color name")
	cmd.Flags().StringVar(&flags.bg, "bg", "", "Background color name")
	cmd.Flags().StringSliceVar(&flags.formats, "format", nil, "Text formats, in order (bold,italic,...)")
}

func (f styleFlags) set() bool {
	return f.fg != "" || f.bg != "" || len(f.formats) > 0
}

func (f styleFlags) spec() (style.Spec, error) {
	return style.ParseSpec(f.fg, f.bg, f.formats)
}

func (f styleFlags) writeOptions() ([]console.WriteOption, error) {
	if !f.set() {
		return nil, nil
	}
	spec, err := f.spec()
	if err != nil {
		return nil, err
	}
	return []console.WriteOption{console.WithSpec(spec)}, nil
}

// countArg parses an optional repetition count, defaulting to 1.
func countArg(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("count must be a non-negative integer, got %q", args[0])
	}
	return n, nil
}

func validateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("input file is required")
	}
	if path == "-" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory", path)
	}
	return nil
}
