package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vcrobe/elementc/compiler"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: elementc <component.html> [component.html ...]\n\n")
		fmt.Fprintf(os.Stderr, "Compiles single-file web components into plain JS on stdout.\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)

	// The sassc probe runs once here; every document shares the result.
	c := compiler.New(out, compiler.DetectStyleCompiler())

	if err := c.EmitRuntime(); err != nil {
		log.Fatalf("write output: %v", err)
	}

	for _, path := range flag.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			out.Flush()
			log.Fatalf("read %s: %v", path, err)
		}
		if err := c.Compile(string(src)); err != nil {
			out.Flush()
			log.Fatalf("compile %s: %v", path, err)
		}
	}

	if err := out.Flush(); err != nil {
		log.Fatalf("write output: %v", err)
	}
}
