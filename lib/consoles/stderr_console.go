package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// writerConsole writes progress and warnings to an io.Writer. Reports go to
// stdout, so all console chatter stays on the error stream by default.
type writerConsole struct {
	out      io.Writer
	quiet    bool
	prefixes []string
}

func NewStdErrConsole() Console {
	return &writerConsole{out: os.Stderr}
}

// NewQuietConsole drops progress messages but still shows warnings.
func NewQuietConsole() Console {
	return &writerConsole{out: os.Stderr, quiet: true}
}

func NewWriterConsole(out io.Writer) Console {
	return &writerConsole{out: out}
}

func (o *writerConsole) Printf(format string, a ...any) {
	if o.quiet {
		return
	}

	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(time.Now().Format("15:04:05"))
	builder.WriteString("] ")
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	_, _ = io.WriteString(o.out, builder.String())
}

func (o *writerConsole) Warnf(format string, a ...any) {
	builder := strings.Builder{}
	builder.WriteString("warning: ")
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	_, _ = io.WriteString(o.out, builder.String())
}

func (o *writerConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *writerConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}
