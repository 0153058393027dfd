package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C in raw mode.
var ErrInterrupted = errors.New("interrupted")

// Reader reads player commands from a terminal or any other stream.
type Reader struct {
	in  io.Reader
	out io.Writer
	buf *bufio.Reader
	fd  int
	tty bool
}

// NewReader wraps in. Raw-mode arrow keys are only used when in is a terminal.
func NewReader(in io.Reader, out io.Writer) *Reader {
	r := &Reader{in: in, out: out, buf: bufio.NewReader(in), fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.fd = int(f.Fd())
		r.tty = true
	}
	return r
}

// ReadLine reads one line of input without the trailing newline
func (r *Reader) ReadLine() (string, error) {
	line, err := r.buf.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Read returns the next command. On a terminal arrow keys return
// immediately without needing Enter; text is collected until Enter.
func (r *Reader) Read() (RawInput, error) {
	if !r.tty {
		line, err := r.ReadLine()
		return newRawInput(DeviceTerminal, line), err
	}

	// Put terminal into raw mode to detect arrow keys
	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		line, err := r.ReadLine()
		return newRawInput(DeviceTerminal, line), err
	}
	defer term.Restore(r.fd, oldState)

	code, err := readRaw(r.in, r.out)
	return newRawInput(DeviceKeyboard, code), err
}

func newRawInput(d Device, code string) RawInput {
	return RawInput{Device: d, Code: code, Timestamp: time.Now()}
}

// readByte reads a single byte
func readByte(in io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := io.ReadFull(in, buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction string if successful, empty string otherwise.
func tryReadArrowKey(in io.Reader, firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte(in)
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}
	b3, err := readByte(in)
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

// readRaw decodes one command from a raw-mode byte stream, echoing typed
// characters to out.
func readRaw(in io.Reader, out io.Writer) (string, error) {
	b1, err := readByte(in)
	if err != nil {
		return "", err
	}

	if b1 == 0x1b {
		if arrowKey := tryReadArrowKey(in, b1); arrowKey != "" {
			fmt.Fprint(out, "\r\n")
			return arrowKey, nil
		}
		return "", nil
	}

	var input []byte
	for b := b1; ; {
		switch {
		case b == 3: // Ctrl+C
			fmt.Fprint(out, "\r\n")
			return "", ErrInterrupted
		case b == '\n' || b == '\r':
			fmt.Fprint(out, "\r\n")
			return string(input), nil
		case b == 127 || b == 8:
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Fprint(out, "\b \b")
			}
		case b == 0x1b:
			// Arrow keys pressed during text entry are discarded
			tryReadArrowKey(in, b)
		case b >= 32 && b < 127:
			input = append(input, b)
			fmt.Fprint(out, string(b))
		}

		if b, err = readByte(in); err != nil {
			return string(input), nil
		}
	}
}
