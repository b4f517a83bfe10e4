package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mgutz/ansi"
	"github.com/pkg/errors"

	"github.com/lunixbochs/firmmap/go/memtab"
	"github.com/lunixbochs/firmmap/go/models"
	"github.com/lunixbochs/firmmap/go/models/cpu"
)

var (
	colorExec  = ansi.ColorCode("red+b")
	colorWrite = ansi.ColorCode("yellow")
	colorRead  = ansi.ColorCode("green")
)

// TableCmd decodes one memory table from a firmware image and prints its regions.
type TableCmd struct {
	Config *models.Config
	Flags  *flag.FlagSet

	// Session is shared across Runs when set, otherwise each Run starts a fresh one.
	Session *memtab.Session
	// Decode is called once the stream is positioned at the first record.
	Decode func(s *memtab.Session, st *models.StrucStream) (memtab.Regions, error)

	Stdout, Stderr io.Writer
}

func NewTableCmd(name string) *TableCmd {
	c := &TableCmd{
		Flags:  flag.NewFlagSet(name, flag.ContinueOnError),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	c.Decode = c.decodeSections
	return c
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// PrintError prints err, and the stack of the innermost error that recorded one.
func (c *TableCmd) PrintError(err error) {
	w := c.Stderr
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(w, "Error: %s\n", err)
	var st stackTracer
	for e := err; e != nil; {
		if s, ok := e.(stackTracer); ok {
			st = s
		}
		cause, ok := e.(interface{ Cause() error })
		if !ok {
			break
		}
		e = cause.Cause()
	}
	if st == nil {
		return
	}
	for _, f := range st.StackTrace() {
		method := fmt.Sprintf("%n", f)
		fmt.Fprintf(w, "%s:%d | %s()\n", f, f, method)
		if method == "main" {
			break
		}
	}
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

func (c *TableCmd) decodeSections(s *memtab.Session, st *models.StrucStream) (memtab.Regions, error) {
	f, err := memtab.ParseFormat(c.Config.Format)
	if err != nil {
		return nil, err
	}
	if c.Config.Count != 0 {
		return memtab.DecodeTable(s, st, f, c.Config.Count)
	}
	return memtab.DecodeAll(s, st, f)
}

func (c *TableCmd) colorize(r *memtab.Region) string {
	line := r.String()
	if !c.Config.Color {
		return line
	}
	color := ""
	switch {
	case r.IsExecutable():
		color = colorExec
	case r.IsWritable():
		color = colorWrite
	case r.IsReadable():
		color = colorRead
	default:
		return line
	}
	return color + line + ansi.Reset
}

func (c *TableCmd) Run(argv []string) int {
	fs := c.Flags
	fs.SetOutput(c.Stderr)
	format := fs.String("format", "end", "section table layout: end (explicit end address) or count (1MiB section count)")
	bigEndian := fs.Bool("be", false, "table is big endian")
	offset := fs.String("offset", "0", "file offset of the first record")
	count := fs.Int("count", 0, "number of records to decode (0 reads to end of file)")
	color := fs.Bool("color", false, "colorize regions by permission")
	verbose := fs.Bool("v", false, "verbose output")
	lookup := fs.String("addr", "", "also print the region that wins for this address")
	fs.Usage = func() {
		fmt.Fprintf(c.Stderr, "Usage: %s [options] <firmware>\n\nOptions:\n", argv[0])
		var flags []*flag.Flag
		fs.VisitAll(func(f *flag.Flag) { flags = append(flags, f) })
		models.PrintFlags(c.Stderr, flags)
	}
	if err := fs.Parse(argv[1:]); err != nil {
		return 2
	}
	args := fs.Args()
	if len(args) != 1 {
		fs.Usage()
		return 1
	}
	off, err := parseUint(*offset)
	if err != nil {
		c.PrintError(errors.Wrap(err, "bad -offset"))
		return 1
	}
	var addr uint64
	if *lookup != "" {
		if addr, err = parseUint(*lookup); err != nil {
			c.PrintError(errors.Wrap(err, "bad -addr"))
			return 1
		}
	}
	c.Config = (&models.Config{
		Format:    *format,
		BigEndian: *bigEndian,
		Offset:    int64(off),
		Count:     *count,
		Color:     *color,
		Verbose:   *verbose,
		Output:    c.Stdout,
	}).Init()
	regions, err := c.load(args[0])
	if err != nil {
		c.PrintError(err)
		return 1
	}
	out := c.Config.Output
	for _, r := range regions {
		fmt.Fprintln(out, c.colorize(r))
	}
	if *lookup != "" {
		if r := regions.Winner(addr); r != nil {
			fmt.Fprintf(out, "%#x -> %s\n", addr, c.colorize(r))
		} else {
			fmt.Fprintf(out, "%#x -> unmapped\n", addr)
		}
	}
	return 0
}

func (c *TableCmd) load(path string) (memtab.Regions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	if _, err := f.Seek(c.Config.Offset, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "seek to %#x", c.Config.Offset)
	}
	session := c.Session
	if session == nil {
		session = memtab.NewSession()
	}
	st := models.NewStrucStream(f, c.Config.ByteOrder())
	regions, err := c.Decode(session, st)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: table at %#x", path, c.Config.Offset)
	}
	if c.Config.Verbose {
		for i, r := range regions {
			log.Printf("record %d: %s %s", i, cpu.ProtString(r.Prot()), r)
		}
		log.Printf("decoded %d regions from %s (%d bytes, format %s)", len(regions), path, st.Off, c.Config.Format)
	}
	return regions, nil
}
