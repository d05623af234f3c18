package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jakegut/gohuff/codec"
)

func main() {
	verbose := flag.Bool("v", false, "log each compression stage")
	single := flag.Bool("single", false, "give a one-symbol input the code \"0\"")
	flag.Parse()

	var input string
	if flag.NArg() > 0 {
		input = strings.Join(flag.Args(), " ")
	} else {
		bs, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("error reading stdin: %s", err)
		}
		input = strings.TrimSuffix(string(bs), "\n")
	}

	opts := codec.NewOptions()
	opts.Verbose = *verbose
	opts.SingleSymbolBit = *single

	h := codec.New(opts)
	if err := h.Compress(input); err != nil {
		log.Fatalf("error compressing: %s", err)
	}

	fmt.Print(h.Report())

	if _, ok := h.CompressedData(); !ok {
		return
	}
	out, err := h.Decompress()
	if err != nil {
		log.Printf("error decompressing: %s", err)
		return
	}
	fmt.Printf("round trip: %v\n", out == input)
}
