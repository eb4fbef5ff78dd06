package sdl

import (
	"time"

	"github.com/mnafees/c8vm/internal"
	"github.com/mnafees/c8vm/pkg/monitor"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	screenColor = 0x1A237E
	spriteColor = 0x9FA8DA
)

// Config holds the frontend settings
type Config struct {
	Scale                 int  // size of one CHIP-8 pixel on screen
	FPS                   int  // frames rendered per second
	InstructionsPerSecond int  // VM steps per second
	Trace                 bool // log every executed instruction
}

// IO is the input/output abstraction layer for the VM
type IO struct {
	window  *sdl.Window
	surface *sdl.Surface

	vm      *internal.C8VM
	logger  *log.Logger
	monitor *monitor.Monitor
	cfg     Config

	// fractional steps carried over between frames
	stepBudget float64
}

// NewIO returns a new I/O instance for the SDL frontend
func NewIO(vm *internal.C8VM, logger *log.Logger, cfg Config) *IO {
	return &IO{
		vm:      vm,
		logger:  logger,
		monitor: monitor.New(logger, cfg.Trace),
		cfg:     cfg,
	}
}

// SetupWindow initialises and sets up the main SDL window
func (io *IO) SetupWindow(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrap(err, "initialising SDL")
	}

	scale := int32(io.cfg.Scale)
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		internal.ScreenWidth*scale, internal.ScreenHeight*scale, sdl.WINDOW_SHOWN)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	io.window = window
	io.surface, err = window.GetSurface()
	if err != nil {
		return errors.Wrap(err, "getting window surface")
	}
	return io.clearScreen()
}

// Destroy should be called before quitting the application
func (io *IO) Destroy() {
	if io.window != nil {
		io.window.Destroy()
	}
	sdl.Quit()
}

// Loop is the main application loop. It returns nil when the window is
// closed and the VM's error when emulation hits a fatal condition.
func (io *IO) Loop() error {
	ticker := time.NewTicker(time.Second / time.Duration(io.cfg.FPS))
	defer ticker.Stop()

	stepsPerFrame := float64(io.cfg.InstructionsPerSecond) / float64(io.cfg.FPS)

	for {
		if !io.pollEvents() {
			return nil
		}

		io.stepBudget += stepsPerFrame
		for ; io.stepBudget >= 1; io.stepBudget-- {
			c, err := io.vm.Step()
			if err != nil {
				io.monitor.Fatal(err, io.vm)
				return err
			}
			io.monitor.Observe(c)
			if c.Waiting {
				// nothing changes until the next poll delivers a key
				io.stepBudget = 0
				break
			}
		}

		if io.vm.ShouldDraw() {
			if err := io.draw(); err != nil {
				return err
			}
		}

		<-ticker.C
	}
}

// pollEvents forwards keyboard state to the VM. Returns false once the user
// asked to quit.
func (io *IO) pollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.KeyboardEvent:
			keycode := t.Keysym.Scancode
			switch t.GetType() {
			case sdl.KEYDOWN:
				switch keycode {
				case sdl.SCANCODE_ESCAPE:
					return false
				case sdl.SCANCODE_BACKSPACE:
					io.reset()
				default:
					io.setKey(keycode, true)
				}
			case sdl.KEYUP:
				io.setKey(keycode, false)
			}
		case *sdl.QuitEvent:
			return false
		}
	}
	return true
}

// reset restarts the loaded program
func (io *IO) reset() {
	io.logger.Info("Resetting VM")
	io.vm.Reset()
	io.stepBudget = 0
	if err := io.clearScreen(); err != nil {
		io.logger.Error("Clearing screen failed", log.Err(err))
	}
}

// Clear the current application screen
func (io *IO) clearScreen() error {
	if err := io.surface.FillRect(nil, screenColor); err != nil {
		return errors.Wrap(err, "clearing surface")
	}
	return io.window.UpdateSurface()
}

// Draws the current display buffer on screen
func (io *IO) draw() error {
	if err := io.surface.FillRect(nil, screenColor); err != nil {
		return errors.Wrap(err, "clearing surface")
	}
	scale := int32(io.cfg.Scale)
	pixels := io.vm.Pixels()
	for h := int32(0); h < internal.ScreenHeight; h++ {
		for w := int32(0); w < internal.ScreenWidth; w++ {
			if pixels[h][w] == 1 {
				rect := &sdl.Rect{X: w * scale, Y: h * scale, W: scale, H: scale}
				if err := io.surface.FillRect(rect, spriteColor); err != nil {
					return errors.Wrap(err, "drawing pixel")
				}
			}
		}
	}
	return io.window.UpdateSurface()
}

func (io *IO) setKey(keycode sdl.Scancode, down bool) {
	code, ok := keymap(keycode)
	if !ok {
		return
	}
	if err := io.vm.SetKey(code, down); err != nil {
		io.logger.Error("Setting key failed", log.Err(err))
	}
}
