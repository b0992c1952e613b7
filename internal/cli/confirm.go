package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// terminalConfirmer asks a yes/no question on the terminal. The answer
// defaults to no: an empty line or EOF declines.
type terminalConfirmer struct {
	in  io.Reader
	out io.Writer
}

func newTerminalConfirmer(in io.Reader, out io.Writer) *terminalConfirmer {
	return &terminalConfirmer{in: in, out: out}
}

// Confirm prompts until it reads y/Y, n/N, or an empty line.
func (c *terminalConfirmer) Confirm(message string) (bool, error) {
	reader := bufio.NewReader(c.in)
	for {
		if _, err := fmt.Fprintf(c.out, "%s [yN] ", message); err != nil {
			return false, err
		}

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}

		switch strings.TrimSpace(line) {
		case "", "n", "N":
			return false, nil
		case "y", "Y":
			return true, nil
		default:
			fmt.Fprintf(c.out, "invalid input: %q\n", strings.TrimSpace(line))
		}

		if err != nil {
			// EOF with no usable answer
			return false, nil
		}
	}
}
