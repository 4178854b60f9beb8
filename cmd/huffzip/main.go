// Command huffzip compresses and decompresses files with static Huffman
// coding.
//
// Usage:
//
//     huffzip [-v] -c <input> <output>
//     huffzip [-v] -d <input> <output>
//
package main

import (
	"fmt"
	"io"
	"os"

	huffman "github.com/chronos-tachyon/huffzip"
)

const usage = "Usage:\n\thuffzip [-v] -c <input> <output>\n\thuffzip [-v] -d <input> <output>\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	verbose := false
	if len(args) != 0 && args[0] == "-v" {
		verbose = true
		args = args[1:]
	}
	if len(args) != 3 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var compress bool
	switch args[0] {
	case "-c", "compress":
		compress = true
	case "-d", "decompress":
		compress = false
	default:
		fmt.Fprintf(stderr, "huffzip: unknown mode %q\n", args[0])
		fmt.Fprint(stderr, usage)
		return 2
	}

	inPath, outPath := args[1], args[2]
	inSize, outSize, err := convert(compress, inPath, outPath)
	if err != nil {
		fmt.Fprintf(stderr, "huffzip: %v\n", err)
		return 1
	}
	if verbose {
		verb := "decompressed"
		if compress {
			verb = "compressed"
		}
		fmt.Fprintf(stdout, "%s %d bytes into %d bytes\n", verb, inSize, outSize)
	}
	return 0
}

func convert(compress bool, inPath, outPath string) (inSize, outSize int64, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, 0, err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, 0, err
	}

	if compress {
		err = huffman.Compress(out, in)
	} else {
		err = huffman.Decompress(out, in)
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(outPath)
		return 0, 0, err
	}

	inSize, err = fileSize(inPath)
	if err != nil {
		return 0, 0, err
	}
	outSize, err = fileSize(outPath)
	return inSize, outSize, err
}

func fileSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
