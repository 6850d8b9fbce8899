package io

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadTemplate consolidates template text from stdin, template files, and CLI arguments
// the order is: stdin, files, then CLI args, separated by blank lines
func ReadTemplate(stdin *os.File, cliArgs []string, files []string) (string, error) {
	var parts []string

	// 1: read from stdin if it is a pipe or redirect
	if stdin != nil {
		stat, err := stdin.Stat()
		if err != nil {
			return "", fmt.Errorf("failed to stat stdin: %w", err)
		}

		if (stat.Mode() & os.ModeCharDevice) == 0 {
			content, err := io.ReadAll(stdin)
			if err != nil {
				return "", fmt.Errorf("failed to read from stdin: %w", err)
			}
			parts = appendTrimmed(parts, string(content))
		}
	}

	// 2: read template files
	for _, path := range files {
		if path == "" {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read template file %q: %w", path, err)
		}
		parts = appendTrimmed(parts, string(content))
	}

	// 3: join CLI arguments with spaces
	if len(cliArgs) > 0 {
		parts = appendTrimmed(parts, strings.Join(cliArgs, " "))
	}

	return strings.Join(parts, "\n\n"), nil
}

// appendTrimmed drops trailing whitespace and skips empty content
func appendTrimmed(parts []string, content string) []string {
	content = strings.TrimRight(content, "\r\n\t ")
	if content == "" {
		return parts
	}
	return append(parts, content)
}
