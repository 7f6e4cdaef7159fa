// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"

	"github.com/creachadair/jbourne/ast"
	"github.com/creachadair/jbourne/ast/pointer"
)

// getCommand prints the value at a path within each input value.
type getCommand struct {
	readOptions
	path *string
}

func (cmd *getCommand) run(c *kingpin.ParseContext) error {
	p, err := pointer.Parse(*cmd.path)
	if err != nil {
		return err
	}
	return cmd.eachValue(func(name string, v ast.Value) error {
		got, err := p.Resolve(v)
		if err != nil {
			level.Warn(logger).Log("msg", "path not found", "file", name, "err", err)
			return nil
		}
		fmt.Println(got.JSON())
		return nil
	})
}

func addGetCommand(app *kingpin.Application) {
	cmd := &getCommand{}
	get := app.Command("get", "Print the value at a path in each input value.").Action(cmd.run)
	cmd.register(get)
	cmd.path = get.Flag("path", "Slash-separated path of keys and indices, e.g. /items/0/name.").Required().String()
}
