package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin. It returns "fine" at end of
// input so that a closed stdin ends the game.
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}
	return readLine(stdinReader)
}

func readLine(r *bufio.Reader) string {
	line, err := r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "fine"
		}
		return strings.TrimRight(line, "\r\n")
	}
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}

// IsTerminal reports whether stdin is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadRaw reads the next raw input: an arrow key code or a typed line.
// Arrow keys are only recognised when stdin is a terminal.
func ReadRaw() RawInput {
	if !IsTerminal() {
		return RawInput{Device: DeviceLine, Code: GetInput()}
	}
	return RawInput{Device: DeviceTerminal, Code: GetInputWithArrows()}
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// GetInputWithArrows reads input with support for arrow keys.
// Arrow keys return immediately without needing Enter.
// For text input, the user types and presses Enter as normal.
func GetInputWithArrows() string {
	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(fd, oldState)

	b1, err := readByte()
	if err != nil {
		return "fine"
	}

	if arrowKey := tryReadArrowKey(b1); arrowKey != "" {
		fmt.Print("\r\n")
		return arrowKey
	}

	// Ctrl+C and Ctrl+D end the game
	if b1 == 3 || b1 == 4 {
		fmt.Print("\r\n")
		return "fine"
	}

	if b1 == '\n' || b1 == '\r' {
		fmt.Print("\r\n")
		return ""
	}

	var line []byte
	if b1 >= 32 && b1 < 127 {
		line = append(line, b1)
		fmt.Print(string(b1))
	}

	for {
		b, err := readByte()
		if err != nil {
			break
		}

		// Arrow keys pressed during text entry are discarded
		if b == 0x1b {
			tryReadArrowKey(b)
			continue
		}

		if b == 127 || b == 8 {
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Print("\b \b")
			}
			continue
		}

		if b == '\n' || b == '\r' {
			fmt.Print("\r\n")
			break
		}

		if b == 3 || b == 4 {
			fmt.Print("\r\n")
			return "fine"
		}

		if b >= 32 && b < 127 {
			line = append(line, b)
			fmt.Print(string(b))
		}
	}

	return string(line)
}
