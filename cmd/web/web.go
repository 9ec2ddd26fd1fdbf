package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/KaComet/okto8"
	"github.com/KaComet/okto8/web"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{})))
}

func main() {
	port := flag.Int("port", 9999, "The port of the server (default = 9999)")
	speed := flag.Uint("speed", uint(okto8.DefaultSpeed), "Speed in steps per second")
	debug := flag.Bool("debug", false, "Expose the websocket debugger (default = false)")

	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalln("must provide the path to a rom as an argument")
	}

	program, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}

	server := web.NewServer(func(config *web.ServerConfig) {
		config.UseDebugger = *debug
		config.Speed = *speed
	})

	if err := server.LoadProgram(program); err != nil {
		log.Fatalln(err)
	}

	if err := server.Listen(*port); err != nil {
		log.Fatalln(err)
	}
}
