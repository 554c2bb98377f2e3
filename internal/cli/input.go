// Package cli is the interactive debug loop: it replays the search-box
// experience in a terminal, showing the parse result and completions for
// whatever is typed.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/filebox/searchkit/internal/utils"
	"github.com/filebox/searchkit/pkg/dict"
	"github.com/filebox/searchkit/pkg/query"
)

// InputHandler reads queries from stdin and prints tags, derived backend
// parameters and trie suggestions for the trailing partial word.
type InputHandler struct {
	holder       *dict.Holder
	suggestLimit int
}

// NewInputHandler wires the handler to the live dictionary holder.
func NewInputHandler(holder *dict.Holder, limit int) *InputHandler {
	return &InputHandler{
		holder:       holder,
		suggestLimit: limit,
	}
}

// Start begins the interface loop. It terminates when stdin closes or a read
// fails.
func (h *InputHandler) Start() error {
	log.Print("searchkit CLI")
	log.Printf("dictionary: %s words", utils.FormatWithCommas(h.holder.Trie().Size()))
	log.Print("type a query and press Enter (Ctrl+C to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		input := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(input) == "" {
			continue
		}
		h.handleInput(input)
	}
}

// handleInput parses one query line and shows completions for its last
// unfinished word, the same dual flow the search box drives.
func (h *InputHandler) handleInput(input string) {
	start := time.Now()
	parsed := query.Parse(input)
	params := query.QueryParams(parsed.Tags)
	log.Debugf("parse took [ %v ]", time.Since(start))

	log.Printf("text: %q", parsed.Text)
	for _, tag := range parsed.Tags {
		log.Printf("  tag %-10s %-12s (raw: %q)", tag.Kind, tag.Label, tag.Raw)
	}
	for key, val := range params {
		log.Printf("  param %s=%s", key, val)
	}

	last := utils.LastWord(input)
	if last == "" {
		return
	}
	start = time.Now()
	words := h.holder.Trie().Search(last, h.suggestLimit)
	elapsed := time.Since(start)
	log.Debugf("search took [ %v ] for prefix %q", elapsed, last)

	if len(words) == 0 {
		log.Printf("no suggestions for %q", last)
		return
	}
	log.Printf("suggestions for %q:", last)
	for i, w := range words {
		log.Printf("%2d. %s", i+1, fmt.Sprintf("\033[38;5;75m%s\033[0m", w))
	}
}
