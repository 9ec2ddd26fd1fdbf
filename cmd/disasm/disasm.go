package main

import (
	"flag"
	"log"
	"os"

	"github.com/KaComet/okto8"
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalln("must provide the path to a rom as an argument")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	if err := okto8.DisassembleProgram(f, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}
