package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/KaComet/okto8"
	"github.com/KaComet/okto8/gui"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{})))
}

func main() {
	autostart := flag.Bool("start", false, "Starts the console automatically if there is a program loaded (defaults = false).")
	initialSpeed := flag.Uint("speed", okto8.DefaultSpeed, fmt.Sprintf("The starting speed of the machine in Hz. It has to be in the range [%d, %d] (defaults = %d).", okto8.MinSpeed, okto8.MaxSpeed, okto8.DefaultSpeed))

	flag.Parse()

	app := gui.NewApp(func(config *gui.AppConfig) {
		config.Speed = min(max(*initialSpeed, okto8.MinSpeed), okto8.MaxSpeed)
	})

	if flag.NArg() > 0 {
		app.Load(flag.Arg(0))
	}

	app.Run(*autostart)
}
