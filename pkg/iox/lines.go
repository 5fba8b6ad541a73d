package iox

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LinesRange reads lines from a [io.Reader] in the specified one-based,
// inclusive range (or until EOF).
func LinesRange(r io.Reader, from, to int) (string, error) {
	if from <= 0 || to < from {
		return "", fmt.Errorf("invalid line range: from=%d to=%d", from, to)
	}

	var lines []string

	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		if lineNumber < from {
			continue
		}

		lines = append(lines, scanner.Text())

		if lineNumber >= to {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading: %w", err)
	}

	return strings.Join(lines, "\n"), nil
}
