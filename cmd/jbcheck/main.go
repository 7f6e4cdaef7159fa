// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jbcheck reads JSON documents and reports syntax errors with their
// line and column positions.
//
// Usage:
//
//	jbcheck check [flags] [file ...]
//	jbcheck get --path items/0/name [file ...]
//
// With no files, input is read from stdin.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func main() {
	app := kingpin.New("jbcheck", "Check and inspect JSON documents.")
	verbose := app.Flag("verbose", "Log each value read.").Short('v').Bool()
	app.PreAction(func(*kingpin.ParseContext) error {
		allow := level.AllowInfo()
		if *verbose {
			allow = level.AllowDebug()
		}
		logger = level.NewFilter(logger, allow)
		return nil
	})
	addCheckCommand(app)
	addGetCommand(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))
}
