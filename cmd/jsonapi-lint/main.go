// Command jsonapi-lint checks files against the structural rules of JSON:API.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/reoring/jsonapi"
	_ "github.com/reoring/jsonapi/source"
	"github.com/reoring/jsonapi/source/yaml"
)

// Version information
const Version = "0.1.0"

const stdinName = "<stdin>"

// CLI defines the command-line interface
type CLI struct {
	Kind       string   `help:"Payload kind: document, resource or relationship." short:"k" enum:"document,resource,relationship" default:"document"`
	Format     string   `help:"Input format. auto picks yaml for .yaml and .yml files and json otherwise." short:"f" enum:"auto,json,yaml" default:"auto"`
	StrictKeys bool     `help:"Treat duplicate object keys as errors." name:"strict-keys"`
	MaxDepth   int      `help:"Maximum nesting depth (0 disables the limit)." default:"0"`
	MaxBytes   int64    `help:"Maximum input size in bytes (0 disables the limit)." default:"0"`
	Debug      bool     `help:"Enable debug logging." short:"d"`
	Version    bool     `help:"Show version information." short:"v"`
	Files      []string `arg:"" optional:"" help:"Files to check. Reads stdin when none are given." type:"path"`
}

func main() {
	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("jsonapi-lint"),
		kong.Description("Check JSON:API documents and request payloads for structural validity"),
		kong.UsageOnError(),
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		parser.FatalIfErrorf(err)
	}
	if cli.Version {
		fmt.Printf("jsonapi-lint version %s\n", Version)
		return
	}

	log, err := newLogger(cli.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if !run(&cli, os.Stdin, os.Stdout, log) {
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

// run checks every input and reports whether all of them are valid.
func run(cli *CLI, stdin io.Reader, stdout io.Writer, log *zap.Logger) bool {
	kind, err := jsonapi.ParsePayloadKind(cli.Kind)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return false
	}
	log.Debug("checking inputs",
		zap.Stringer("payload", kind),
		zap.String("driver", jsonapi.CurrentJSONDriver().Name()),
		zap.Int("files", len(cli.Files)),
	)

	if len(cli.Files) == 0 {
		return report(stdout, stdinName, checkReader(cli, kind, stdinName, stdin, log))
	}
	ok := true
	for _, name := range cli.Files {
		f, err := os.Open(name)
		if err != nil {
			ok = report(stdout, name, err) && ok
			continue
		}
		err = checkReader(cli, kind, name, f, log)
		_ = f.Close()
		ok = report(stdout, name, err) && ok
	}
	return ok
}

func checkReader(cli *CLI, kind jsonapi.PayloadKind, name string, r io.Reader, log *zap.Logger) error {
	opt := cli.parseOpt(log.With(zap.String("file", name)))
	format := cli.formatFor(name)
	log.Debug("decoding", zap.String("file", name), zap.String("format", format))
	if format == "json" {
		_, err := jsonapi.ParseReader(kind, r, opt)
		return err
	}

	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return &jsonapi.DecodeError{Code: jsonapi.CodeTruncated, Path: "/", Message: "max bytes exceeded", Offset: opt.MaxBytes}
	}
	v, err := yaml.Decode(data)
	if err != nil {
		return err
	}
	return jsonapi.Validate(kind, v)
}

func (c *CLI) parseOpt(log *zap.Logger) jsonapi.ParseOpt {
	opt := jsonapi.ParseOpt{
		Strictness: jsonapi.Strictness{OnDuplicateKey: jsonapi.Warn},
		MaxDepth:   c.MaxDepth,
		MaxBytes:   c.MaxBytes,
		OnWarning: func(e *jsonapi.DecodeError) {
			log.Warn("duplicate key", zap.String("pointer", e.Path), zap.Int64("offset", e.Offset))
		},
	}
	if c.StrictKeys {
		opt.Strictness.OnDuplicateKey = jsonapi.Error
	}
	return opt
}

func (c *CLI) formatFor(name string) string {
	if c.Format != "auto" {
		return c.Format
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

// report prints the result line for one input and reports whether it passed.
func report(w io.Writer, name string, err error) bool {
	if err == nil {
		fmt.Fprintf(w, "%s: ok\n", name)
		return true
	}
	if inv, ok := jsonapi.AsInvalidDocument(err); ok {
		fmt.Fprintf(w, "%s: %s: %s\n", name, inv.Path, inv.Message)
		return false
	}
	fmt.Fprintf(w, "%s: %v\n", name, err)
	return false
}
