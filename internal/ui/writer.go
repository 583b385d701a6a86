// Package ui writes command output, paging long content when the
// terminal allows it.
//
// The pager runs whatever command the user configured via config or
// $PAGER, the same way git and man do.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/sealion/internal/domain"
)

// defaultPager is used when neither config nor $PAGER names one.
var defaultPager = []string{"less", "-FRSX"}

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
	isTTY         func() bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager (--no-pager).
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithConfigGetter sets where the "pager" key is read from.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// WithTTY overrides terminal detection.
func WithTTY(fn func() bool) WriterOption {
	return func(w *Writer) {
		w.isTTY = fn
	}
}

// NewWriter returns a Writer on stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo returns a Writer on out. Only an *os.File attached to a
// terminal is ever paged.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
		isTTY: func() bool {
			f, ok := out.(*os.File)
			return ok && term.IsTerminal(int(f.Fd()))
		},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// PagerCommand returns the pager argv, or nil when content should be
// written directly.
//
// Precedence:
//  1. --no-pager → direct
//  2. output is not a terminal → direct
//  3. config "pager", "cat" bypasses
//  4. $PAGER, "cat" bypasses
//  5. less -FRSX
func (w *Writer) PagerCommand() []string {
	if w.pagerDisabled || w.isTTY == nil || !w.isTTY() {
		return nil
	}

	if w.configGetter != nil {
		if p, ok := w.configGetter("pager"); ok && strings.TrimSpace(p) != "" {
			return pagerArgv(p)
		}
	}

	if w.envGetter != nil {
		if p := w.envGetter("PAGER"); strings.TrimSpace(p) != "" {
			return pagerArgv(p)
		}
	}

	return defaultPager
}

func pagerArgv(cmd string) []string {
	parts := strings.Fields(cmd)
	if len(parts) == 0 || parts[0] == "cat" {
		return nil
	}
	return parts
}

// Pager displays content through a pager if appropriate. Any pager
// failure falls back to direct output.
func (w *Writer) Pager(content string) {
	argv := w.PagerCommand()
	if argv == nil {
		fmt.Fprint(w.out, content)
		return
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = w.out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Fprint(w.out, content)
	}
}

var _ domain.OutputWriter = (*Writer)(nil)
