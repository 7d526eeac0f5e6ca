// Command roundsvg converts JSON point documents into SVG <path> elements
// with rounded corners, and path descriptions back into JSON points.
//
//	roundsvg encode [-config config.toml] [-closed] [-radius r] [-cubic] [file]
//	roundsvg decode [-svg] [-scale s] [file]
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vasalvit/roundsvg"
)

const usage = `usage:
  roundsvg encode [flags] [file]   JSON path document -> <path> element
  roundsvg decode [flags] [file]   path description -> JSON points
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	var err error
	switch args[0] {
	case "encode":
		err = encode(args[1:], stdin, stdout, stderr)
	case "decode":
		err = decode(args[1:], stdin, stdout, stderr)
	case "-h", "-help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
		return 2
	}
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "roundsvg:", err)
		return 1
	}
	return 0
}

func setupLogging(stderr io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	roundsvg.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
}

func encode(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagConf      = fs.String("config", "", "TOML config file location")
		flagClosed    = fs.Bool("closed", false, "close the path even if the document does not ask for it")
		flagRadius    = fs.Float64("radius", -1, "default corner radius; negative keeps the configured one")
		flagCubic     = fs.Bool("cubic", false, "write corners as cubic curves")
		flagPrecision = fs.Int("precision", -1, "maximum decimals; negative keeps the configured value")
		flagVerbose   = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(stderr, *flagVerbose)

	opts := roundsvg.DefaultOptions()
	if *flagConf != "" {
		f, err := os.Open(*flagConf)
		if err != nil {
			return err
		}
		c, err := roundsvg.ReadConfig(f)
		f.Close()
		if err != nil {
			return err
		}
		if opts, err = c.Options(); err != nil {
			return err
		}
	}
	if *flagRadius >= 0 {
		opts.DefaultRadius = *flagRadius
	}
	if *flagCubic {
		opts.Curve = roundsvg.CurveCubic
	}
	if *flagPrecision >= 0 {
		opts.Precision = *flagPrecision
	}

	data, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	doc, err := roundsvg.ParseDocument(data)
	if err != nil {
		return err
	}
	if *flagClosed {
		doc.Closed = true
	}
	el, err := roundsvg.NewGenerator(opts).Element(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, el)
	return err
}

func decode(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagSvg     = fs.Bool("svg", false, "input is an SVG document; print the points of every path")
		flagJSON    = fs.Bool("json", false, "input is a JSON string holding the path description")
		flagScale   = fs.Float64("scale", 0, "scale decoded points; negative divides")
		flagVerbose = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(stderr, *flagVerbose)

	data, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	var out []byte
	switch {
	case *flagSvg:
		svg, err := roundsvg.ParseSvgFromReader(bytes.NewReader(data), fs.Arg(0), *flagScale)
		if err != nil {
			return err
		}
		all := make(map[string]json.RawMessage, len(svg.Paths))
		for i, p := range svg.Paths {
			id := p.ID
			if id == "" {
				id = fmt.Sprintf("path%d", i)
			}
			if all[id], err = roundsvg.MarshalPoints(p.Points); err != nil {
				return err
			}
		}
		if out, err = json.Marshal(all); err != nil {
			return err
		}
	case *flagJSON:
		if out, err = roundsvg.NewDecoder(*flagScale).DecodeJSON(data); err != nil {
			return err
		}
	default:
		d := strings.TrimSpace(string(data))
		if out, err = roundsvg.MarshalPoints(roundsvg.NewDecoder(*flagScale).Decode(d)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}
