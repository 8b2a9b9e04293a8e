// Command linedump prints the line index of a text file.
//
// Usage:
//
//	linedump [-wrap N] [-row H] [-dot] [-trace LEVEL] file
//
// For every line, linedump prints its row, character offset, byte offset,
// y position, length, delimiter, display width and height. With -wrap,
// lines are soft-wrapped at N columns before their heights are computed;
// -wrap -1 wraps at the width of the terminal. With -dot, the line tree is
// written in Graphviz DOT format instead.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/lineindex"
	"github.com/npillmayer/lineindex/lines"
	"github.com/npillmayer/lineindex/measure"
	"github.com/npillmayer/lineindex/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

var wrapflag = flag.Int("wrap", 0, "Wrap lines at this many columns (0: no wrap, -1: terminal width)")
var rowflag = flag.Float64("row", lines.DefaultEstimatedLineHeight, "Height of a display row")
var dotflag = flag.Bool("dot", false, "Write the line tree in DOT format")
var traceflag = flag.String("trace", "Error", "Trace level (Debug, Info, Error)")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	gtrace.CoreTracer = gologadapter.New()
	switch *traceflag {
	case "Debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "Info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	//
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	color.NoColor = !interactive
	ms := measure.Measurer{
		RowHeight: *rowflag,
		WrapWidth: wrapWidth(*wrapflag, interactive),
		Context:   uax11.ContextFromEnvironment(),
	}
	doc, err := textfile.Load(flag.Arg(0), lineindex.WithMeasurer(ms))
	if err != nil {
		fmt.Fprintf(os.Stderr, "linedump: %v\n", err)
		os.Exit(1)
	}
	out := bufio.NewWriter(os.Stdout)
	if *dotflag {
		err = doc.Lines().WriteDot(out)
	} else {
		err = dump(out, doc, ms)
	}
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "linedump: %v\n", err)
		os.Exit(1)
	}
}

func wrapWidth(wrap int, interactive bool) int {
	if wrap >= 0 {
		return wrap
	}
	if interactive {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			return w
		}
	}
	return 80
}

var (
	headerColor = color.New(color.FgBlue, color.Bold)
	rowColor    = color.New(color.FgBlue)
	delimColor  = color.New(color.FgRed)
	wrapColor   = color.New(color.FgYellow)
)

func dump(w io.Writer, doc *lineindex.Document, ms measure.Measurer) error {
	m := doc.Lines()
	headerColor.Fprintf(w, "%6s %8s %8s %10s %6s %5s %6s %8s\n",
		"row", "char", "byte", "y", "len", "delim", "width", "height")
	for line := range m.Lines() {
		d := line.Item()
		width := ms.Width(m.Text(line))
		rowColor.Fprintf(w, "%6d", m.Row(line))
		fmt.Fprintf(w, " %8d %8d %10.1f %6d ", m.Location(line), m.ByteOffset(line), m.YPosition(line), d.Length)
		delimColor.Fprintf(w, "%5s", delimiter(d.DelimiterLength, doc.LineText(line, true)))
		fmt.Fprintf(w, " %6d ", width)
		if ms.WrapWidth > 0 && width > ms.WrapWidth {
			wrapColor.Fprintf(w, "%8.1f\n", d.Height)
		} else {
			fmt.Fprintf(w, "%8.1f\n", d.Height)
		}
	}
	_, err := headerColor.Fprintf(w, "%d lines, %d chars, %d bytes, height %.1f\n",
		m.LineCount(), m.Len(), m.ByteLen(), m.ContentHeight())
	return err
}

func delimiter(length int, s string) string {
	switch {
	case length == 0:
		return "-"
	case length == 2:
		return `\r\n`
	case s[len(s)-1] == '\r':
		return `\r`
	default:
		return `\n`
	}
}
