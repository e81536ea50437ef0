// Package progression reads chord lists typed by hand or kept in text files
package progression

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Split breaks a line of input into chord symbols
func Split(text string) []string {
	return strings.Fields(text)
}

// Parse reads chord symbols from r. A field starting with '#' comments out the
// rest of its line; sharps inside symbols such as "C#m" are kept.
func Parse(r io.Reader) ([]string, error) {
	var chords []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, field := range Split(scanner.Text()) {
			if strings.HasPrefix(field, "#") {
				break
			}
			chords = append(chords, field)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read progression: %w", err)
	}
	return chords, nil
}

// LoadFile reads a progression file
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open progression: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
