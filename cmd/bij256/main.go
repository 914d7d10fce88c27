package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"xdao.co/bij256/bij256"
	"xdao.co/bij256/cidutil"
	"xdao.co/bij256/codecrpc"
	"xdao.co/bij256/model"
	"xdao.co/bij256/profile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "encode":
		return cmdEncode(args[1:], in, out, errOut)
	case "decode":
		return cmdDecode(args[1:], out, errOut)
	case "unary":
		return cmdUnary(args[1:], in, out, errOut)
	case "width":
		return cmdWidth(args[1:], out, errOut)
	case "cid":
		return cmdCID(args[1:], in, out, errOut)
	case "profiles":
		return cmdProfiles(out)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "bij256: bijective base-256 codec")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  bij256 encode [--hex] [--json] [--remote <addr>] <file|->")
	fmt.Fprintln(w, "  bij256 decode [--hex] [--json] [--remote <addr>] <integer>")
	fmt.Fprintln(w, "  bij256 unary encode [--length] [--profile <name>] [--ceiling <n>] [--marker <c>] [--remote <addr>] <file|->")
	fmt.Fprintln(w, "  bij256 unary decode [--hex] [--marker <c>] [--remote <addr>] <file|->")
	fmt.Fprintln(w, "  bij256 width <integer>")
	fmt.Fprintln(w, "  bij256 cid <file|->")
	fmt.Fprintln(w, "  bij256 profiles")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - integers are base-10; '-' reads from stdin")
	fmt.Fprintln(w, "  - --hex reads (encode) or writes (decode) hex instead of raw bytes")
	fmt.Fprintln(w, "  - unary encode refuses lengths at or above the profile ceiling; --length prints the length instead")
	fmt.Fprintln(w, "  - unary decode ignores one trailing newline (\\n or \\r\\n)")
	fmt.Fprintln(w, "  - --remote uses a bij256d server instead of the in-process codec; the server's")
	fmt.Fprintln(w, "    profile applies, so --json, --length, --profile, --ceiling and --marker")
	fmt.Fprintln(w, "    cannot be combined with it")
}

func readInput(path string, in io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(in)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return b, nil
}

func decodeHex(b []byte) ([]byte, error) {
	s := strings.Join(strings.Fields(string(b)), "")
	return hex.DecodeString(s)
}

// openCodec returns the in-process codec, or a client for remote when set.
func openCodec(remote string, p *bij256.Projector) (codecrpc.Codec, func(), error) {
	if remote == "" {
		return codecrpc.Local{Projector: p}, func() {}, nil
	}
	c, err := codecrpc.Dial(remote, codecrpc.DialOptions{Timeout: 5 * time.Second})
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", remote, err)
	}
	c.Timeout = 30 * time.Second
	return c, func() { _ = c.Close() }, nil
}

// remoteConflict reports the first of names set on the command line when
// --remote is also set. Those flags only affect the in-process codec.
func remoteConflict(fs *flag.FlagSet, errOut io.Writer, names ...string) bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["remote"] {
		return false
	}
	for _, name := range names {
		if set[name] {
			fmt.Fprintf(errOut, "--%s cannot be combined with --remote\n", name)
			return true
		}
	}
	return false
}

func reportErr(errOut io.Writer, op string, err error) int {
	fmt.Fprintf(errOut, "%s: %v\n", op, err)
	if bij256.IsKind(err, bij256.KindTooLarge) {
		fmt.Fprintf(errOut, "required length: %s\n", model.FormatInteger(bij256.RequiredLength(err)))
		fmt.Fprintln(errOut, "hint: use 'bij256 encode' or 'bij256 unary encode --length'")
	}
	return 1
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func cmdEncode(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var hexIn, asJSON bool
	var remote string
	fs.BoolVar(&hexIn, "hex", false, "Input is hex text")
	fs.BoolVar(&asJSON, "json", false, "Print a JSON description")
	fs.StringVar(&remote, "remote", "", "bij256d address")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: bij256 encode [--hex] [--json] [--remote <addr>] <file|->")
		return 2
	}
	if remoteConflict(fs, errOut, "json") {
		return 2
	}
	b, err := readInput(fs.Arg(0), in)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if hexIn {
		if b, err = decodeHex(b); err != nil {
			fmt.Fprintf(errOut, "invalid hex: %v\n", err)
			return 1
		}
	}
	if asJSON {
		if err := writeJSON(out, model.Encode(b)); err != nil {
			fmt.Fprintf(errOut, "write: %v\n", err)
			return 1
		}
		return 0
	}

	codec, closeFn, err := openCodec(remote, nil)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer closeFn()
	n, err := codec.EncodeInteger(b)
	if err != nil {
		return reportErr(errOut, "encode", err)
	}
	_, _ = fmt.Fprintln(out, model.FormatInteger(n))
	return 0
}

func cmdDecode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var hexOut, asJSON bool
	var remote string
	fs.BoolVar(&hexOut, "hex", false, "Write hex text instead of raw bytes")
	fs.BoolVar(&asJSON, "json", false, "Print a JSON description")
	fs.StringVar(&remote, "remote", "", "bij256d address")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: bij256 decode [--hex] [--json] [--remote <addr>] <integer>")
		return 2
	}
	if remoteConflict(fs, errOut, "json") {
		return 2
	}
	if asJSON {
		resp, err := model.DecodeDecimal(fs.Arg(0))
		if err != nil {
			return reportErr(errOut, "decode", err)
		}
		if err := writeJSON(out, resp); err != nil {
			fmt.Fprintf(errOut, "write: %v\n", err)
			return 1
		}
		return 0
	}

	n, err := model.ParseInteger(fs.Arg(0))
	if err != nil {
		return reportErr(errOut, "decode", err)
	}
	codec, closeFn, err := openCodec(remote, nil)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer closeFn()
	b, err := codec.DecodeInteger(n)
	if err != nil {
		return reportErr(errOut, "decode", err)
	}
	if hexOut {
		_, _ = fmt.Fprintln(out, hex.EncodeToString(b))
		return 0
	}
	if _, err := out.Write(b); err != nil {
		fmt.Fprintf(errOut, "write: %v\n", err)
		return 1
	}
	return 0
}

func cmdUnary(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: bij256 unary <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: encode, decode")
		return 2
	}
	switch args[0] {
	case "encode":
		return cmdUnaryEncode(args[1:], in, out, errOut)
	case "decode":
		return cmdUnaryDecode(args[1:], in, out, errOut)
	default:
		fmt.Fprintf(errOut, "unknown unary subcommand: %s\n", args[0])
		return 2
	}
}

func cmdUnaryEncode(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("unary encode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	pf := profile.RegisterFlags(fs)
	var lengthOnly bool
	var remote string
	fs.BoolVar(&lengthOnly, "length", false, "Print the unary length instead of the string")
	fs.StringVar(&remote, "remote", "", "bij256d address (server profile applies)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: bij256 unary encode [--length] [--profile <name>] [--ceiling <n>] [--marker <c>] [--remote <addr>] <file|->")
		return 2
	}
	if remoteConflict(fs, errOut, "length", "profile", "ceiling", "marker") {
		return 2
	}
	p, err := pf.Projector()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	b, err := readInput(fs.Arg(0), in)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if lengthOnly {
		_, _ = fmt.Fprintln(out, model.FormatInteger(p.Length(b)))
		return 0
	}

	codec, closeFn, err := openCodec(remote, p)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer closeFn()
	s, err := codec.EncodeUnary(b)
	if err != nil {
		return reportErr(errOut, "unary encode", err)
	}
	_, _ = fmt.Fprintln(out, s)
	return 0
}

func cmdUnaryDecode(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("unary decode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	pf := profile.RegisterFlags(fs)
	var hexOut bool
	var remote string
	fs.BoolVar(&hexOut, "hex", false, "Write hex text instead of raw bytes")
	fs.StringVar(&remote, "remote", "", "bij256d address (server profile applies)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: bij256 unary decode [--hex] [--marker <c>] [--remote <addr>] <file|->")
		return 2
	}
	if remoteConflict(fs, errOut, "profile", "ceiling", "marker") {
		return 2
	}
	p, err := pf.Projector()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	raw, err := readInput(fs.Arg(0), in)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if bytes.HasSuffix(raw, []byte("\n")) {
		raw = bytes.TrimSuffix(raw[:len(raw)-1], []byte("\r"))
	}

	codec, closeFn, err := openCodec(remote, p)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer closeFn()
	b, err := codec.DecodeUnary(string(raw))
	if err != nil {
		return reportErr(errOut, "unary decode", err)
	}
	if hexOut {
		_, _ = fmt.Fprintln(out, hex.EncodeToString(b))
		return 0
	}
	if _, err := out.Write(b); err != nil {
		fmt.Fprintf(errOut, "write: %v\n", err)
		return 1
	}
	return 0
}

func cmdWidth(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("width", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: bij256 width <integer>")
		return 2
	}
	n, err := model.ParseInteger(fs.Arg(0))
	if err != nil {
		return reportErr(errOut, "width", err)
	}
	w, err := bij256.BlockWidth(n)
	if err != nil {
		return reportErr(errOut, "width", err)
	}
	_, _ = fmt.Fprintln(out, w)
	return 0
}

func cmdCID(args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: bij256 cid <file|->")
		return 2
	}
	b, err := readInput(fs.Arg(0), in)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	id := cidutil.String(b)
	if id == "" {
		fmt.Fprintln(errOut, "failed to compute CID")
		return 1
	}
	_, _ = fmt.Fprintln(out, id)
	return 0
}

func cmdProfiles(out io.Writer) int {
	for _, p := range profile.List() {
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", p.Name, p.Ceiling, p.Description)
	}
	return 0
}
