// Package dict loads and holds the autocomplete dictionary: flat word lists
// exported by the backend, or words mined directly from the bot's SQLite
// file-metadata store.
package dict

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadWordList reads a plain-text dictionary, one word per line. Blank lines
// and `#` comments are skipped.
func ReadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}
