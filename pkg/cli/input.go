package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt is printed before reading the equation interactively.
const Prompt = "Type an up to second degree polynomial equation:"

// ReadEquation returns the equation to solve. With no positional argument
// it prompts on w and reads one line from r; with one it uses that
// argument. Any other count is a usage error.
func ReadEquation(args []string, r io.Reader, w io.Writer) (string, error) {
	switch len(args) {
	case 0:
		fmt.Fprintln(w, Prompt)
		line, err := bufio.NewReader(r).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %v", ErrInput, err)
		}
		return strings.TrimSpace(line), nil
	case 1:
		return strings.TrimSpace(args[0]), nil
	default:
		return "", fmt.Errorf("%w: expected at most one equation argument, got %d", ErrUsage, len(args))
	}
}
