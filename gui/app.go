// Package gui is a raylib frontend for the console: a window with the
// screen, a toolbar and drag-and-drop program loading.
package gui

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	raygui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/KaComet/okto8"
)

const (
	ToolbarGap       = 5
	ToolbarBtnWidth  = 80
	ToolbarBtnHeight = 40
	ToolbarHeight    = 50
	ToolbarBtnOffset = ToolbarBtnWidth + ToolbarGap

	ScreenPixelSize = 15
	ScreenPositionX = 0
	ScreenPositionY = ToolbarHeight + 1

	MessageBarGap    = 5
	MessageBarHeight = 30
)

var ScreenBgColor = rl.Gold
var ScreenPixelColor = rl.Yellow
var MessageBarBgColor = rl.DarkGray
var MessageBarInfoColor = rl.SkyBlue
var MessageBarErrorColor = rl.Red

type MessageType byte

const (
	MessageInfo MessageType = iota
	MessageError
)

// keypadBindings maps each keypad key to the physical key that triggers it,
// following the classic 4x4 layout.
var keypadBindings = map[byte]int32{
	0x0: rl.KeyX,
	0x1: rl.KeyOne,
	0x2: rl.KeyTwo,
	0x3: rl.KeyThree,
	0x4: rl.KeyQ,
	0x5: rl.KeyW,
	0x6: rl.KeyE,
	0x7: rl.KeyA,
	0x8: rl.KeyS,
	0x9: rl.KeyD,
	0xA: rl.KeyZ,
	0xB: rl.KeyC,
	0xC: rl.KeyFour,
	0xD: rl.KeyR,
	0xE: rl.KeyF,
	0xF: rl.KeyV,
}

type App struct {
	*okto8.InMemoryKeyboard

	Console *okto8.Console

	// Speed in Hz, bound to the toolbar slider
	speed float32

	// Copy of the last rendered screen; the console loop writes it, the UI
	// loop reads it
	screenMutex sync.Mutex
	screen      okto8.Screen

	// Window width and height
	winW, winH int

	// Toolbar
	startBtn, stopBtn, stepBtn, resetBtn bool

	loadedProgramPath string

	lastMessage      string
	lastMessageColor rl.Color
}

type AppConfig struct {
	Speed uint
}

type AppConfigCb func(config *AppConfig)

func NewApp(configs ...AppConfigCb) *App {
	config := &AppConfig{
		Speed: okto8.DefaultSpeed,
	}
	for _, cb := range configs {
		cb(config)
	}

	app := &App{
		InMemoryKeyboard: okto8.NewInMemoryKeyboard(),
		speed:            float32(config.Speed),
	}

	app.Console = okto8.NewConsole(okto8.NewMachine(), app, app.InMemoryKeyboard, okto8.NewDummyBuzzer())
	app.Console.SetSpeedInHz(config.Speed)
	app.updateWindowSize()

	return app
}

// Boot implements okto8.Display.
func (app *App) Boot() error {
	return nil
}

// Render implements okto8.Display.
func (app *App) Render(screen *okto8.Screen) error {
	app.screenMutex.Lock()
	app.screen = *screen
	app.screenMutex.Unlock()

	return nil
}

// Load reads a program from path into the machine.
func (app *App) Load(path string) {
	program, err := os.ReadFile(path)
	if err != nil {
		slog.Error("Error loading program", slog.String("path", path), slog.Any("error", err))
		app.showMessage(err.Error(), MessageError)
		return
	}

	if err = app.Console.LoadProgram(program); err != nil {
		slog.Error("Error loading program", slog.String("path", path), slog.Any("error", err))
		app.showMessage(err.Error(), MessageError)
		return
	}

	app.loadedProgramPath = path
	slog.Info("Program loaded", slog.String("path", path))
	app.showMessage(fmt.Sprintf("Program '%s' loaded", path), MessageInfo)
}

// Run boots the console and enters the UI loop until the window closes.
func (app *App) Run(autostart bool) {
	go func(console *okto8.Console) {
		slog.Info("starting console loop on pause")
		if err := console.Boot(); err != nil {
			app.showMessage(err.Error(), MessageError)
			slog.Error("Error booting console", slog.Any("error", err))
			return
		}

		if !autostart || app.loadedProgramPath == "" {
			console.Stop()
		}

		if err := console.Run(); err != nil {
			app.showMessage(err.Error(), MessageError)
			slog.Error("Console loop stopped", slog.Any("error", err))
		}
	}(app.Console)

	rl.InitWindow(int32(app.winW), int32(app.winH), "okto8")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	for !rl.WindowShouldClose() {
		app.handleFileLoad()
		app.handleKeypad()
		app.handleActions()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		app.drawToolbar()
		app.drawScreen()
		app.drawMessageBar()

		rl.EndDrawing()
	}
}

func (app *App) updateWindowSize() {
	app.winW = okto8.ScreenWidth * ScreenPixelSize
	app.winH = okto8.ScreenHeight*ScreenPixelSize + ToolbarHeight + MessageBarHeight
	slog.Info("Updating window size", slog.Int("width", app.winW), slog.Int("height", app.winH))
}

func (app *App) handleFileLoad() {
	if rl.IsFileDropped() {
		files := rl.LoadDroppedFiles()
		defer rl.UnloadDroppedFiles()

		app.Load(files[0])
	}
}

func (app *App) handleKeypad() {
	for key, binding := range keypadBindings {
		if rl.IsKeyDown(binding) {
			app.Press(key)
		} else {
			app.Release(key)
		}
	}
}

func (app *App) handleActions() {
	if app.startBtn {
		app.Console.Start()
		slog.Info("Starting the console")
	}
	if app.stopBtn {
		app.Console.Stop()
		slog.Info("Stopping the console")
	}
	if app.resetBtn {
		app.Console.Reset()
		slog.Info("Resetting the program to the beginning")
	}
	if app.stepBtn {
		app.Console.SingleStep()
		slog.Info("Running a single step")
	}

	app.Console.SetSpeedInHz(uint(app.speed))
}

func (app *App) drawToolbar() {
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), ToolbarHeight, rl.Gray)

	raygui.Label(
		rl.NewRectangle(ToolbarGap, 26, 50, 20),
		fmt.Sprintf("%.0f Hz", app.speed),
	)

	app.speed = raygui.Slider(
		rl.NewRectangle(ToolbarGap*6, ToolbarGap, 100, 20),
		fmt.Sprintf("%d Hz", okto8.MinSpeed),
		fmt.Sprintf("%d Hz", okto8.MaxSpeed),
		app.speed,
		float32(okto8.MinSpeed),
		float32(okto8.MaxSpeed),
	)

	app.startBtn = raygui.Button(
		rl.NewRectangle(float32(app.winW)-4*ToolbarBtnOffset, ToolbarGap, ToolbarBtnWidth, ToolbarBtnHeight),
		raygui.IconText(raygui.ICON_PLAYER_PLAY, "Start"),
	)
	app.stopBtn = raygui.Button(
		rl.NewRectangle(float32(app.winW)-3*ToolbarBtnOffset, ToolbarGap, ToolbarBtnWidth, ToolbarBtnHeight),
		raygui.IconText(raygui.ICON_PLAYER_STOP, "Stop"),
	)
	app.stepBtn = raygui.Button(
		rl.NewRectangle(float32(app.winW)-2*ToolbarBtnOffset, ToolbarGap, ToolbarBtnWidth, ToolbarBtnHeight),
		raygui.IconText(raygui.ICON_PLAYER_NEXT, "Step"),
	)
	app.resetBtn = raygui.Button(
		rl.NewRectangle(float32(app.winW)-1*ToolbarBtnOffset, ToolbarGap, ToolbarBtnWidth, ToolbarBtnHeight),
		raygui.IconText(raygui.ICON_ROTATE, "Reset"),
	)
}

func (app *App) drawScreen() {
	app.screenMutex.Lock()
	defer app.screenMutex.Unlock()

	for row := byte(0); row < okto8.ScreenHeight; row++ {
		for col := byte(0); col < okto8.ScreenWidth; col++ {
			color := ScreenBgColor
			if app.screen.Pixel(row, col) == okto8.Lit {
				color = ScreenPixelColor
			}

			rl.DrawRectangle(
				ScreenPositionX+ScreenPixelSize*int32(col),
				ScreenPositionY+ScreenPixelSize*int32(row),
				ScreenPixelSize,
				ScreenPixelSize,
				color)
		}
	}
}

func (app *App) showMessage(msg string, mType MessageType) {
	app.lastMessage = msg
	switch mType {
	case MessageInfo:
		app.lastMessageColor = MessageBarInfoColor

	case MessageError:
		app.lastMessageColor = MessageBarErrorColor
	}
}

func (app *App) drawMessageBar() {
	rl.DrawRectangle(
		0,
		int32(app.winH)-MessageBarHeight,
		int32(app.winW),
		MessageBarHeight,
		MessageBarBgColor,
	)

	rl.DrawText(
		app.lastMessage,
		MessageBarGap,
		int32(app.winH)-MessageBarHeight+MessageBarGap,
		16,
		app.lastMessageColor,
	)
}
