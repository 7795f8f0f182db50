package shell

import (
	"bufio"
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// LineReader supplies the shell with input lines. Readline returns io.EOF
// when input ends and ErrInterrupted when the user presses Ctrl-C.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// ScannerReader reads lines from a pipe or file. The prompt is echoed to out
// before every read so transcripts look like an interactive session.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewScannerReader reads from in and echoes prompts to out. out may be nil.
func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (r *ScannerReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *ScannerReader) Readline() (string, error) {
	if r.out != nil && r.prompt != "" {
		if _, err := io.WriteString(r.out, r.prompt); err != nil {
			return "", err
		}
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// TerminalReader is an interactive line editor with history and completion.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader starts a readline session. historyFile may be empty to
// keep history in memory only.
func NewTerminalReader(historyFile string) (*TerminalReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            defaultPrompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		AutoComplete:      completer(),
	})
	if err != nil {
		return nil, err
	}
	return &TerminalReader{rl: rl}, nil
}

func (r *TerminalReader) Readline() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

func (r *TerminalReader) SetPrompt(prompt string) {
	r.rl.SetPrompt(prompt)
}

// Stdout returns a writer that does not garble the prompt line.
func (r *TerminalReader) Stdout() io.Writer {
	return r.rl.Stdout()
}

func (r *TerminalReader) Close() error {
	return r.rl.Close()
}

func completer() *readline.PrefixCompleter {
	cmds := commandTable()
	names := make([]readline.PrefixCompleterInterface, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, readline.PcItem(c.name))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("help", names...),
		readline.PcItem("exit"),
		readline.PcItem("stat"),
		readline.PcItem("create"),
		readline.PcItem("list"),
		readline.PcItem("edit"),
		readline.PcItem("find",
			readline.PcItem("firstname"),
			readline.PcItem("lastname"),
			readline.PcItem("dateofbirth"),
		),
		readline.PcItem("export",
			readline.PcItem("csv"),
			readline.PcItem("xml"),
		),
	)
}
