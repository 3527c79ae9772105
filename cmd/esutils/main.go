// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The esutils command classifies ECMAScript words and syntax tree nodes.
//
// Usage:
//
//	esutils [flags] word...     # classify each word
//	esutils -ast file.json      # classify the nodes of an ESTree document
//	esutils -list               # print the keyword tables
//	esutils                     # REPL on a terminal, else one word per stdin line
package main // import "github.com/estools/esutils/cmd/esutils"

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/estools/esutils/keyword"
	"github.com/estools/esutils/repl"
	"github.com/estools/esutils/report"
	"golang.org/x/term"
	"google.golang.org/protobuf/proto"
)

// flags
var (
	strict   = flag.Bool("strict", false, "classify words as in strict mode code")
	output   = flag.String("output", report.JSON, "output format (text, json)")
	astFile  = flag.String("ast", "", "classify the nodes of the ESTree JSON `file`")
	cacheCap = flag.Int("cache", keyword.DefaultCacheCapacity, "identifier name cache capacity (0 disables)")
	list     = flag.Bool("list", false, "print the keyword tables")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("esutils: ")
	log.SetFlags(0)
	flag.Parse()

	v := keyword.NewValidator(*cacheCap)

	switch {
	case *list:
		emit(report.Tables())
	case *astFile != "":
		if flag.NArg() > 0 {
			log.Print("-ast does not take word arguments")
			return 1
		}
		data, err := os.ReadFile(*astFile)
		check(err)
		root, err := report.DecodeNode(data)
		if err != nil {
			log.Printf("%s: %v", *astFile, err)
			return 1
		}
		for _, n := range report.Elements(root) {
			emit(report.Node(n))
		}
	case flag.NArg() > 0:
		for _, word := range flag.Args() {
			emit(report.Word(v, word, *strict))
		}
	default:
		session := &repl.Session{Validator: v, Strict: *strict, Format: *output, Out: os.Stdout}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("Welcome to esutils. Enter a word, or :strict to toggle strict mode.")
			repl.REPL(session)
			return 0
		}
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			check(session.Eval(sc.Text()))
		}
		check(sc.Err())
	}
	return 0
}

func emit(msg proto.Message) {
	data, err := report.Marshal(msg, *output)
	check(err)
	fmt.Printf("%s\n", data)
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
