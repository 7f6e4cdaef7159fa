package jbourne_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jbourne"
	"github.com/creachadair/jbourne/internal/testutil"
	jsoniter "github.com/json-iterator/go"
)

// benchInput constructs a document of episode records for benchmarks.
func benchInput(n int) []byte {
	var sb strings.Builder
	sb.WriteString(`{"episodes": [`)
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `{"id": %d, "title": "Episode é %d", "rating": %d.%d,
  "tags": ["alpha", "beta", "😀"], "aired": true, "notes": null,
  "summary": "A \"quoted\" summary\twith escapes\nand %d lines"}`, i, i, i%10, i%7, i)
	}
	sb.WriteString("]}")
	return []byte(sb.String())
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Std", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Jsoniter", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		api := jsoniter.ConfigCompatibleWithStandardLibrary
		for b.Loop() {
			var v any
			if err := api.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			if _, err := jbourne.Parse(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	for _, size := range []int{64, 4096} {
		b.Run(fmt.Sprintf("Chunks-%d", size), func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			chunks := testutil.Chunks(input, size)
			for b.Loop() {
				res, _ := testutil.ReadChunks(jbourne.NewReader(nil), chunks)
				if res.Status != jbourne.Success {
					b.Fatalf("Unexpected error: %v", res.Err)
				}
			}
		})
	}

	b.Run("Decoder", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			dec := jbourne.NewDecoder(bytes.NewReader(input), nil)
			if _, err := dec.Decode(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
