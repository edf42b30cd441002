// Package cli handles the interactive prompt loop: adding words and
// predicting completions from stdin.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/castellan/wordtrie/pkg/suggest"
	"github.com/charmbracelet/log"
)

const prompt = "command ((p)redict completions, (a)dd word, (q)uit): "

// InputHandler processes user commands from stdin. Prefix length limits
// and the display limit come from flags or the config file.
type InputHandler struct {
	completer       suggest.ICompleter
	minPrefixLength int
	maxPrefixLength int
	displayLimit    int
	requestCount    int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters.
func NewInputHandler(completer suggest.ICompleter, minLength, maxLength, limit int) *InputHandler {
	return &InputHandler{
		completer:       completer,
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		displayLimit:    limit,
	}
}

// Start begins the interface loop. It prompts for a command, reads a line
// from stdin and dispatches it. The loop ends on (q)uit, on EOF, or on a
// read error.
func (h *InputHandler) Start() error {
	log.Print("wordtrie CLI")
	reader := bufio.NewReader(os.Stdin)

	for {
		input, err := h.readLine(reader, prompt)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch input {
		case "a":
			word, err := h.readLine(reader, "word to add: ")
			if err != nil {
				return err
			}
			h.completer.AddWord(word)
			log.Printf("Added %q (%d words total)", word, h.completer.WordCount())
		case "p":
			prefix, err := h.readLine(reader, "prefix to complete: ")
			if err != nil {
				return err
			}
			h.handlePredict(prefix)
		case "q":
			return nil
		case "":
			continue
		default:
			log.Warnf("Command %q is not valid", input)
		}
	}
}

// readLine prints a prompt, reads one line and trims surrounding space.
func (h *InputHandler) readLine(reader *bufio.Reader, msg string) (string, error) {
	fmt.Print(msg)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// handlePredict validates the prefix length, asks the completer for
// suggestions and prints them with their frequencies.
func (h *InputHandler) handlePredict(prefix string) {
	h.requestCount++

	if len(prefix) < h.minPrefixLength {
		log.Errorf("Prefix too short: %q", prefix)
		return
	}
	if len(prefix) > h.maxPrefixLength {
		log.Errorf("Prefix too long: %q", prefix)
		return
	}

	start := time.Now()
	suggestions := h.completer.Complete(prefix)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for prefix %q", elapsed, prefix)

	if len(suggestions) == 0 {
		log.Warnf("No completions found for prefix %q", prefix)
		return
	}
	if h.displayLimit > 0 && len(suggestions) > h.displayLimit {
		suggestions = suggestions[:h.displayLimit]
	}

	log.Printf("Completions for %q (most to least popular):", prefix)
	for i, s := range suggestions {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		log.Printf("%2d. %-40s (freq: %4d)", i+1, clWord, s.Frequency)
	}
}
