package tool

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/visyura/notna-archives.art/internal/gallery"
)

// ErrQuit marks a deliberate cancel at a prompt. Drivers treat it as a
// successful no-op.
var ErrQuit = errors.New("cancelled")

// Prompter reads interactive answers. Every answer is parsed by a pure
// function below, so non-interactive callers can skip the prompter
// entirely.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps an input/output pair, usually stdin and stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Question prints the query and returns the trimmed answer line.
func (p *Prompter) Question(query string) (string, error) {
	fmt.Fprint(p.out, query)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ParseIndex parses a 1-based menu selection against count entries and
// returns the 0-based index. "q" cancels.
func ParseIndex(input string, count int) (int, error) {
	if strings.EqualFold(strings.TrimSpace(input), "q") {
		return 0, ErrQuit
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("invalid choice %q", input)
	}
	return n - 1, nil
}

// ParsePosition parses an insertion position: 0 means first, count means
// after the last existing record.
func ParsePosition(input string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 || n > count {
		return 0, fmt.Errorf("invalid position %q", input)
	}
	return n, nil
}

// ParseOrder parses a comma-separated list of 1-based image numbers into
// 0-based indices, each validated against count.
func ParseOrder(input string, count int) ([]int, error) {
	parts := strings.Split(input, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > count {
			return nil, fmt.Errorf("invalid order entry %q", part)
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}

// ParseOrientation maps the accepted CLI tokens onto an orientation.
func ParseOrientation(arg string) (gallery.Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "h", "horizontal", "landscape":
		return gallery.Landscape, true
	case "v", "vertical", "portrait":
		return gallery.Portrait, true
	default:
		return "", false
	}
}
