// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunkedfile reads annotated test data for classifier tests.
//
// A chunked file consists of several chunks of input text separated by
// "---" lines. Each chunk is an input to the code under test, typically
// an ESTree JSON document. A line containing "###" carries an
// expectation: the following text is a Go string literal denoting a
// regular expression that the outcome computed for the chunk must match.
// The annotation is removed from Source, so the chunk remains valid JSON.
//
// Example:
//
//	{"type": "IfStatement",           ### "problematic=true"
//	 "consequent": {"type": "IfStatement", "consequent": {"type": "EmptyStatement"}},
//	 "alternate": {"type": "EmptyStatement"}}
//	---
//	{"type": "Identifier"}            ### "expression=true"
//
// A client test feeds each chunk's Source into the code under test, then
// calls chunk.Got for each outcome, and chunk.Done when finished. Any
// discrepancy is reported using the client's reporter, which is typically
// a testing.T.
package chunkedfile // import "github.com/estools/esutils/internal/chunkedfile"

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

// A Chunk is a portion of a source file.
// It contains a list of expected outcomes in line order.
type Chunk struct {
	Source   string
	filename string
	report   Reporter
	wants    []want
}

type want struct {
	linenum int
	rx      *regexp.Regexp
}

// Reporter is implemented by *testing.T.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// Read parses a chunked file and returns its chunks.
// It reports failures using the reporter.
func Read(filename string, report Reporter) []Chunk {
	data, err := os.ReadFile(filename)
	if err != nil {
		report.Errorf("%s", err)
		return nil
	}
	return readBytes(filename, data, report)
}

func readBytes(filename string, data []byte, report Reporter) (chunks []Chunk) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	linenum := 1
	for _, chunk := range strings.Split(text, "\n---\n") {
		var wants []want
		lines := strings.Split(chunk, "\n")
		for j, line := range lines {
			hashes := strings.Index(line, "###")
			if hashes < 0 {
				continue
			}
			rest := strings.TrimSpace(line[hashes+len("###"):])
			lines[j] = strings.TrimRight(line[:hashes], " \t")
			pattern, err := strconv.Unquote(rest)
			if err != nil {
				report.Errorf("\n%s:%d: not a quoted regexp: %s", filename, linenum+j, rest)
				continue
			}
			rx, err := regexp.Compile(pattern)
			if err != nil {
				report.Errorf("\n%s:%d: %v", filename, linenum+j, err)
				continue
			}
			wants = append(wants, want{linenum + j, rx})
		}
		// Pad with newlines so the line numbers match the original file.
		src := strings.Repeat("\n", linenum-1) + strings.Join(lines, "\n")
		chunks = append(chunks, Chunk{src, filename, report, wants})
		linenum += len(lines) + 1 // +1 for the "---" separator
	}
	return chunks
}

// Got consumes the next expected outcome and reports a mismatch, or an
// unexpected outcome if none remain.
func (chunk *Chunk) Got(outcome string) {
	if len(chunk.wants) == 0 {
		chunk.report.Errorf("\n%s: unexpected outcome: %s", chunk.filename, outcome)
		return
	}
	w := chunk.wants[0]
	chunk.wants = chunk.wants[1:]
	if !w.rx.MatchString(outcome) {
		chunk.report.Errorf("\n%s:%d: outcome %q does not match pattern %q", chunk.filename, w.linenum, outcome, w.rx)
	}
}

// Done should be called by the client to indicate that the chunk has no
// more outcomes. Done reports expected outcomes that did not occur.
func (chunk *Chunk) Done() {
	for _, w := range chunk.wants {
		chunk.report.Errorf("\n%s:%d: expected outcome matching %q", chunk.filename, w.linenum, w.rx)
	}
	chunk.wants = nil
}
