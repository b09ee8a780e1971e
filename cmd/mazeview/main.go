// Command mazeview renders robot maze snapshots on the terminal and encodes
// TOML fixtures into the wire format.
//
//	mazeview render [-hex] [-in FILE]
//	mazeview encode -in FIXTURE.toml [-out FILE] [-hex]
//
// render reads stdin when -in is omitted; a .toml input is treated as a fixture.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beka-birhanu/vinom-mazeview/fixture"
	"github.com/beka-birhanu/vinom-mazeview/infrastruture/logger"
	"github.com/beka-birhanu/vinom-mazeview/maze"
	"github.com/beka-birhanu/vinom-mazeview/render"
	"github.com/beka-birhanu/vinom-mazeview/service/i"
)

var errUsage = errors.New("usage: mazeview render [-hex] [-in FILE] | mazeview encode -in FIXTURE.toml [-out FILE] [-hex]")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log, err := logger.New("MAZEVIEW", logger.ColorMagenta, stderr, logger.WithoutTimestamp())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if len(args) == 0 {
		log.Error(errUsage.Error())
		return 2
	}

	switch args[0] {
	case "render":
		err = runRender(args[1:], stdin, stdout, log)
	case "encode":
		err = runEncode(args[1:], stdout, log)
	default:
		err = errUsage
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		log.Error(err.Error())
		return 2
	default:
		if kind := maze.KindName(err); kind != "" {
			log.Error(fmt.Sprintf("%s: %v", kind, err))
		} else {
			log.Error(err.Error())
		}
		return 1
	}
}

func runRender(args []string, stdin io.Reader, stdout io.Writer, log i.Logger) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	in := fs.String("in", "", "snapshot file (default stdin)")
	isHex := fs.Bool("hex", false, "input is a hex dump")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if strings.EqualFold(filepath.Ext(*in), ".toml") {
		s, err := fixture.Load(*in)
		if err != nil {
			return err
		}
		log.Debug(fmt.Sprintf("Loaded fixture %s", *in))
		_, err = fmt.Fprintln(stdout, render.Snapshot(s))
		return err
	}

	raw, err := readInput(*in, stdin)
	if err != nil {
		return err
	}
	if *isHex {
		if raw, err = decodeHex(raw); err != nil {
			return err
		}
	}

	text, err := render.DecodeAndRender(raw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, text)
	return err
}

func runEncode(args []string, stdout io.Writer, log i.Logger) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	in := fs.String("in", "", "TOML fixture to encode")
	out := fs.String("out", "", "output file (default stdout)")
	asHex := fs.Bool("hex", false, "write a hex dump instead of raw bytes")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *in == "" {
		return errUsage
	}

	s, err := fixture.Load(*in)
	if err != nil {
		return err
	}
	buf, err := maze.Encode(s)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", *in, err)
	}
	if *asHex {
		buf = []byte(hex.EncodeToString(buf) + "\n")
	}

	if *out == "" {
		_, err = stdout.Write(buf)
		return err
	}
	if err := os.WriteFile(*out, buf, 0o644); err != nil {
		return err
	}
	log.Info(fmt.Sprintf("Wrote %d bytes to %s", len(buf), *out))
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func decodeHex(b []byte) ([]byte, error) {
	raw, err := hex.DecodeString(strings.Join(strings.Fields(string(b)), ""))
	if err != nil {
		return nil, fmt.Errorf("decoding hex input: %w", err)
	}
	return raw, nil
}
