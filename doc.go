// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jbourne implements an incremental JSON parser.
//
// # Reading
//
// The Reader type reads JSON values from input supplied in buffers of any
// size, such as the chunks of a network stream. A value may be split across
// buffers at any byte, including in the middle of an escape sequence or a
// multi-byte UTF-8 encoding. Call TryParse with each buffer in turn:
//
//	r := jbourne.NewReader(nil)
//	for buf := range chunks {
//	   res := r.TryParse(buf)
//	   switch res.Status {
//	   case jbourne.Success:
//	      log.Printf("Value at %v: %s", res.Location, res.Value.JSON())
//	   case jbourne.Failure:
//	      log.Fatalf("Parse failed: %v", res.Err)
//	   }
//	}
//
// TryParse returns as soon as a value is complete, and reports how many bytes
// of the buffer it consumed. Any input after the value is left for the next
// call. When the input ends, call Finish. A number at the very end of the
// input cannot be recognized as complete until then:
//
//	res := r.Finish() // e.g., completes "125"
//
// # Parsing
//
// To parse a single value held entirely in memory, use Parse:
//
//	v, err := jbourne.Parse(data)
//
// To read a sequence of values from an io.Reader, use a Decoder. Decode
// returns io.EOF when no further values are available:
//
//	dec := jbourne.NewDecoder(input, nil)
//	for {
//	   v, err := dec.Decode()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Decode failed: %v", err)
//	   }
//	   handle(v)
//	}
//
// # Errors
//
// Invalid input is reported as an error of concrete type *SyntaxError, giving
// the offset, line, and column of the offending input, and the offending
// rune when it could be decoded. Lines are numbered from 1 and columns from
// 0. A tab advances the column by 4, and a multi-byte UTF-8 character counts
// as one column.
//
// The values produced by the parser are defined in package ast.
package jbourne
