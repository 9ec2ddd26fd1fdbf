// Package web serves a machine to a browser: the screen and key events
// travel over websockets, the run state is controlled over plain HTTP.
package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/KaComet/okto8"
	"github.com/gorilla/websocket"
)

type Server struct {
	*okto8.InMemoryKeyboard
	*okto8.DummyBuzzer

	console  *okto8.Console
	debugger *Debugger

	upgrader websocket.Upgrader

	wsMutex sync.Mutex
	socket  *websocket.Conn
}

type ServerConfig struct {
	UseDebugger bool
	Speed       uint
}

type ServerConfigCb func(config *ServerConfig)

func NewServer(configs ...ServerConfigCb) *Server {
	config := &ServerConfig{
		UseDebugger: false,
		Speed:       okto8.DefaultSpeed,
	}
	for _, cb := range configs {
		cb(config)
	}

	s := &Server{
		InMemoryKeyboard: okto8.NewInMemoryKeyboard(),
		DummyBuzzer:      okto8.NewDummyBuzzer(),
	}

	s.console = okto8.NewConsole(okto8.NewMachine(), s, s.InMemoryKeyboard, s.DummyBuzzer)
	s.console.SetSpeedInHz(config.Speed)
	if config.UseDebugger {
		s.debugger = NewDebugger(s.console)
	}

	return s
}

func (s *Server) LoadProgram(program []byte) error {
	return s.console.LoadProgram(program)
}

// Boot implements okto8.Display.
func (s *Server) Boot() error {
	return nil
}

// Render implements okto8.Display. The screen travels as a packed bitmap:
// 8 pixels per byte, most significant bit first, row-major.
func (s *Server) Render(screen *okto8.Screen) error {
	buf := make([]byte, 0, okto8.ScreenWidth*okto8.ScreenHeight/8)

	var packed byte
	for row := byte(0); row < okto8.ScreenHeight; row++ {
		for col := byte(0); col < okto8.ScreenWidth; col++ {
			packed <<= 1
			if screen.Pixel(row, col) == okto8.Lit {
				packed |= 1
			}
			if col%8 == 7 {
				buf = append(buf, packed)
				packed = 0
			}
		}
	}

	s.wsMutex.Lock()
	defer s.wsMutex.Unlock()

	if s.socket == nil {
		return nil
	}

	if err := s.socket.WriteMessage(websocket.BinaryMessage, buf); err != nil {
		slog.Error("Error writing screen frame, dropping client", slog.Any("error", err))
		s.socket = nil
	}

	return nil
}

// Listen boots the console, starts the loop paused and serves until the
// HTTP server fails.
func (s *Server) Listen(port int) error {
	if err := s.console.Boot(); err != nil {
		return err
	}

	go func() {
		s.console.Stop()
		if err := s.console.Run(); err != nil {
			slog.Error("Console loop stopped", slog.Any("error", err))
		}
	}()

	slog.Info("Listening on port", slog.Int("port", port))

	http.Handle("/", http.FileServer(http.Dir("./static")))

	http.HandleFunc("/display", s.handleDisplay)

	http.HandleFunc("/start", s.control("Starting", s.console.Start))
	http.HandleFunc("/stop", s.control("Stopping", s.console.Stop))
	http.HandleFunc("/reset", s.control("Stopping and resetting", func() {
		s.console.Stop()
		s.console.Reset()
	}))
	http.HandleFunc("/step", s.control("Running a single step", func() {
		if err := s.console.SingleStep(); err != nil {
			slog.Error("Error running a single step", slog.Any("error", err))
		}
	}))

	if s.debugger != nil {
		s.debugger.Handle(&s.upgrader)
	}

	return http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
}

func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Error upgrading display connection", slog.Any("error", err))
		return
	}

	slog.Info("Display client connected")

	s.wsMutex.Lock()
	if s.socket != nil {
		s.socket.Close()
	}
	s.socket = conn
	s.wsMutex.Unlock()

	// Key events arrive on the same socket as [key, state] pairs.
	go func() {
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				slog.Info("Display client disconnected")
				return
			}
			if len(msg) != 2 {
				continue
			}

			if msg[1] > 0 {
				s.Press(msg[0])
			} else {
				s.Release(msg[0])
			}
		}
	}()
}

func (s *Server) control(msg string, action func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Type")

		w.Header().Set("Cache-Control", "no-cache")

		slog.Info(msg)
		action()
	}
}
