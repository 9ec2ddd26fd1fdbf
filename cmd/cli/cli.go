package main

import (
	"flag"
	"log"
	"os"

	"github.com/KaComet/okto8"
)

func main() {
	speed := flag.Uint("speed", uint(okto8.DefaultSpeed), "speed of the machine in Hz")

	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalln("must provide the path to a rom as an argument")
	}

	program, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}

	kb := okto8.NewTerminalKeyboard()
	defer kb.Close()

	console := okto8.NewConsole(
		okto8.NewMachine(),
		okto8.NewTerminalDisplay(),
		kb,
		okto8.NewTerminalBuzzer(),
	)

	if err := console.LoadProgram(program); err != nil {
		log.Fatalln(err)
	}

	if err := console.Boot(); err != nil {
		log.Fatalln(err)
	}

	if err := console.RunAtSpeed(*speed); err != nil {
		log.Fatalln(err)
	}
}
