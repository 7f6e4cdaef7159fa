// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"

	"github.com/creachadair/jbourne"
	"github.com/creachadair/jbourne/ast"
)

// readOptions are the input settings shared by all commands.
type readOptions struct {
	chunkSize *int64
	maxDepth  *int
	hujson    *bool
	files     *[]string
}

func (o *readOptions) register(cmd *kingpin.CmdClause) {
	chunk := cmd.Flag("chunk-size", "Size of each read from the input (ignored with --hujson).").Default("32KiB").Bytes()
	o.chunkSize = (*int64)(chunk)
	o.maxDepth = cmd.Flag("max-depth", "Maximum nesting depth of arrays and objects.").
		Default(fmt.Sprint(jbourne.DefaultMaxDepth)).Int()
	o.hujson = cmd.Flag("hujson", "Accept comments and trailing commas.").Bool()
	o.files = cmd.Arg("file", "Input files (default stdin).").Strings()
}

// eachValue calls f with each value read from each input file. Errors are
// logged, and eachValue reports an error if any input failed.
func (o *readOptions) eachValue(f func(name string, v ast.Value) error) error {
	files := *o.files
	if len(files) == 0 {
		files = []string{"-"}
	}
	var failed int
	for _, name := range files {
		if err := o.readFile(name, f); err != nil {
			level.Error(logger).Log("msg", "read failed", "file", name, "err", err)
			failed++
		}
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(files))
	}
	return nil
}

func (o *readOptions) readFile(name string, f func(string, ast.Value) error) error {
	in := io.Reader(os.Stdin)
	if name != "-" {
		fp, err := os.Open(name)
		if err != nil {
			return err
		}
		defer fp.Close()
		in = fp
	}
	cr := &countReader{r: in}

	var nv int64
	if *o.hujson {
		data, err := io.ReadAll(cr)
		if err != nil {
			return err
		}
		v, err := jbourne.ParseHuJSONOptions(data, &jbourne.Options{MaxDepth: *o.maxDepth})
		if err != nil {
			return err
		}
		nv++
		if err := f(name, v); err != nil {
			return err
		}
	} else {
		dec := jbourne.NewDecoder(cr, &jbourne.Options{
			MaxDepth:   *o.maxDepth,
			BufferSize: int(*o.chunkSize),
		})
		for {
			v, err := dec.Decode()
			if errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				return err
			}
			nv++
			level.Debug(logger).Log("msg", "read value", "file", name, "loc", dec.Location())
			if err := f(name, v); err != nil {
				return err
			}
		}
	}
	level.Info(logger).Log("msg", "input ok", "file", name,
		"values", humanize.Comma(nv), "size", humanize.Bytes(uint64(cr.n)))
	return nil
}

// countReader counts the bytes read from r.
type countReader struct {
	r io.Reader
	n int64
}

func (c *countReader) Read(data []byte) (int, error) {
	nr, err := c.r.Read(data)
	c.n += int64(nr)
	return nr, err
}

// checkCommand reports whether each input is valid.
type checkCommand struct {
	readOptions
	print *bool
}

func (cmd *checkCommand) run(c *kingpin.ParseContext) error {
	return cmd.eachValue(func(_ string, v ast.Value) error {
		if *cmd.print {
			fmt.Println(v.JSON())
		}
		return nil
	})
}

func addCheckCommand(app *kingpin.Application) {
	cmd := &checkCommand{}
	check := app.Command("check", "Check that the inputs are valid JSON.").Default().Action(cmd.run)
	cmd.register(check)
	cmd.print = check.Flag("print", "Print each value as compact JSON.").Bool()
}
