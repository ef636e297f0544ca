package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/abiosoft/readline"
)

// LineReader reads one command line at a time. The line terminator is
// consumed and discarded; io.EOF reports that the input stream closed.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// ScannerReader is a LineReader for non-interactive input: it prints
// the prompt to out and reads a line from in.
type ScannerReader struct {
	prompt  string
	out     io.Writer
	scanner *bufio.Scanner
}

var _ LineReader = (*ScannerReader)(nil)

// NewScannerReader creates a ScannerReader with the given prompt.
func NewScannerReader(prompt string, in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{
		prompt:  prompt,
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

// ReadLine implements LineReader.ReadLine.
func (r *ScannerReader) ReadLine() (string, error) {
	fmt.Fprint(r.out, r.prompt)
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close implements LineReader.Close.
func (r *ScannerReader) Close() error {
	return nil
}

// ReadlineReader is a LineReader for interactive terminals, with line
// editing and history.
type ReadlineReader struct {
	rl *readline.Instance
}

var _ LineReader = (*ReadlineReader)(nil)

// NewReadlineReader creates a readline-backed LineReader. historyFile
// may be empty to keep history in memory only.
func NewReadlineReader(prompt, historyFile string) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine implements LineReader.ReadLine. An interrupted line is
// returned as empty rather than an error so the loop just re-prompts.
func (r *ReadlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", nil
	}
	return line, err
}

// Close implements LineReader.Close.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
