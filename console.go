package okto8

import (
	"errors"
	"time"
)

var ErrConsoleIsNotBooted = errors.New("the console has not been booted properly")

const (
	DefaultSpeed uint = 500
	MaxSpeed     uint = 700
	MinSpeed     uint = 5

	// TimerRate is the decay cadence of the two timers in Hz, independent of
	// how many instructions execute.
	TimerRate = 60.0
)

// Console drives a Machine from wall-clock time: it steps the machine at a
// configurable speed, decays the timers at 60 Hz, forwards key state from
// the keyboard, renders dirty screens and gates the buzzer on the sound
// timer. The machine itself has no notion of time.
type Console struct {
	Machine *Machine

	Display  Display
	Keyboard Keyboard
	Buzzer   Buzzer

	speedInHz uint
	step      time.Duration

	isBooted  bool
	isPaused  bool
	lastError error

	// Hooks that run before every step
	beforeStepHooks []Hook
	// Hooks that run after every step
	afterStepHooks []Hook
	// Hooks that run after an error
	errorHooks []Hook
}

func NewConsole(m *Machine, display Display, keyboard Keyboard, buzzer Buzzer) *Console {
	return &Console{
		Machine: m,

		Display:  display,
		Keyboard: keyboard,
		Buzzer:   buzzer,

		speedInHz: DefaultSpeed,
		step:      time.Second / time.Duration(DefaultSpeed),

		isBooted:  false,
		isPaused:  false,
		lastError: nil,

		beforeStepHooks: make([]Hook, 0),
		afterStepHooks:  make([]Hook, 0),
		errorHooks:      make([]Hook, 0),
	}
}

func (c *Console) IsRunning() bool {
	return !c.isPaused
}

func (c *Console) SpeedInHz() uint {
	return c.speedInHz
}

func (c *Console) SetSpeedInHz(inHz uint) {
	c.speedInHz = inHz
	c.step = time.Second / time.Duration(inHz)
}

// Start resumes stepping after a Stop.
func (c *Console) Start() {
	c.isPaused = false
}

// Stop pauses stepping. Key delivery and rendering keep running.
func (c *Console) Stop() {
	c.isPaused = true
}

// Boot initializes all the components
// If the console was already booted, this method is a noop
func (c *Console) Boot() error {
	if c.isBooted {
		return nil
	}

	if err := c.Display.Boot(); err != nil {
		return err
	}

	if err := c.Keyboard.Boot(); err != nil {
		return err
	}

	if err := c.Buzzer.Boot(); err != nil {
		return err
	}

	c.isBooted = true

	return nil
}

// LoadProgram loads the program into the machine and rewinds it to the
// start-of-program address.
func (c *Console) LoadProgram(program []byte) error {
	if err := c.Machine.LoadProgram(program); err != nil {
		return err
	}

	return c.render()
}

// Reset soft-resets the machine and re-renders.
func (c *Console) Reset() {
	c.Machine.SoftReset()
	c.Machine.Screen.Clear()
	c.render()
}

// RunAtSpeed sets the speed and starts the loop
func (c *Console) RunAtSpeed(speedInHz uint) error {
	c.SetSpeedInHz(speedInHz)
	return c.Run()
}

// Run starts the loop at the current speed. It returns on the first
// component error; there is no other exit.
func (c *Console) Run() error {
	if !c.isBooted {
		return ErrConsoleIsNotBooted
	}

	if c.lastError != nil {
		return c.lastError
	}

	last := time.Now()

	for {
		now := time.Now()
		if err := c.tick(now.Sub(last)); err != nil {
			return err
		}
		last = now

		// Prevent the machine from running faster than expected
		time.Sleep(max(c.step-time.Since(last), 0))
	}
}

// SingleStep runs a single step bypassing the pause state
func (c *Console) SingleStep() error {
	if !c.isBooted {
		return ErrConsoleIsNotBooted
	}

	if c.lastError != nil {
		return c.lastError
	}

	prev := c.isPaused
	c.isPaused = false
	defer func() {
		c.isPaused = prev
	}()

	return c.tick(c.step)
}

func (c *Console) tick(elapsed time.Duration) error {
	if err := c.Keyboard.Update(c.Machine); err != nil {
		return c.fail(err)
	}

	if !c.isPaused {
		c.runHooks(c.beforeStepHooks)
		c.Machine.Step()
		c.runHooks(c.afterStepHooks)

		c.Machine.DecayDelay(elapsed.Seconds() * TimerRate)
		c.Machine.DecaySound(elapsed.Seconds() * TimerRate)
	}

	if c.Machine.Sound.IsActive() {
		c.Buzzer.Play()
	} else {
		c.Buzzer.Stop()
	}

	if c.Machine.ConsumeScreenDirty() {
		if err := c.Display.Render(c.Machine.Screen); err != nil {
			return c.fail(err)
		}
	}

	return nil
}

func (c *Console) render() error {
	c.Machine.ConsumeScreenDirty()
	return c.Display.Render(c.Machine.Screen)
}

func (c *Console) fail(err error) error {
	c.lastError = err
	c.runHooks(c.errorHooks)

	return err
}
