// Package main provides a command-line utility to dump NBTx file contents
// as ASCII text or raw hex.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scigolib/nbtx"
)

func main() {
	hexMode := flag.Bool("hex", false, "dump the file's raw bytes, as stored, as hex instead of ASCII")
	ownLineBrace := flag.Bool("own-line-brace", false, "put the opening brace of a container on the header line")
	decimalBytes := flag.Bool("decimal-bytes", false, "print byte-array elements in decimal instead of hex")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: nbtxdump [flags] <file.nbtx>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	file := args[0]
	f, err := os.Open(file)
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close file: %v", err)
		}
	}()

	if *hexMode {
		dumpHex(f)
		return
	}

	tree, err := nbtx.ParseFile(f)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", file, err)
	}

	style := nbtx.DefaultStyle
	if *ownLineBrace {
		style.Brace = nbtx.BraceOwnLine
	}
	if *decimalBytes {
		style.ByteArray = nbtx.RadixDec
	}

	text, err := nbtx.DumpASCII(tree, style)
	if err != nil {
		log.Fatalf("Failed to format %s: %v", file, err)
	}
	fmt.Print(text)
}

func dumpHex(f *os.File) {
	buf, err := os.ReadFile(f.Name())
	if err != nil {
		log.Fatalf("Failed to read file: %v", err)
	}

	for i := 0; i < len(buf); i += 16 {
		end := i + 16
		if end > len(buf) {
			end = len(buf)
		}
		chunk := buf[i:end]

		fmt.Printf("%08x: ", i)
		for j := 0; j < 16; j++ {
			if j < len(chunk) {
				fmt.Printf("%02x ", chunk[j])
			} else {
				fmt.Print("   ")
			}
			if j == 7 {
				fmt.Print(" ")
			}
		}
		fmt.Print(" |")
		for _, b := range chunk {
			if b >= 32 && b <= 126 {
				fmt.Printf("%c", b)
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println("|")
	}
}
