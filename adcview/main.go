package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/adcmon/pkg/board"
	"github.com/itohio/adcmon/pkg/config"
	"github.com/itohio/adcmon/pkg/hal"
	"github.com/itohio/adcmon/pkg/monitor"
	"github.com/itohio/adcmon/pkg/report"
	"github.com/itohio/adcmon/pkg/sampler"
)

func main() {
	var (
		portFlag   = flag.String("p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
		configFlag = flag.String("config", "adcmon.yaml", "Configuration file path")
		mockFlag   = flag.Bool("mock", false, "Run a simulated sampler instead of reading a serial port")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}

	application := app.NewWithID("com.itohio.adcview")
	window := application.NewWindow("ADC Monitor")
	window.Resize(fyne.NewSize(420, 220))
	window.CenterOnScreen()

	state := &appState{
		cfg:     cfg,
		window:  window,
		view:    newReportView(cfg.ADC.Reference),
		useMock: *mockFlag,
	}

	state.connectBtn = widget.NewButtonWithIcon("", theme.LoginIcon(), func() {
		handleConnect(state)
	})
	state.status = widget.NewLabel("Disconnected")

	window.SetContent(container.NewBorder(
		container.NewHBox(state.connectBtn, state.status),
		nil,
		nil,
		nil,
		state.view.content,
	))
	window.SetOnClosed(func() {
		disconnect(state)
	})
	window.ShowAndRun()
}

// appState holds the application state.
type appState struct {
	cfg        *config.Config
	window     fyne.Window
	view       *reportView
	connectBtn *widget.Button
	status     *widget.Label
	useMock    bool

	mon     *monitor.Monitor
	updated chan struct{} // closed when the update goroutine exits
}

// handleConnect toggles between connected and disconnected.
func handleConnect(state *appState) {
	if state.mon != nil {
		disconnect(state)
		state.connectBtn.SetIcon(theme.LoginIcon())
		state.status.SetText("Disconnected")
		return
	}

	mon := monitor.New(state.cfg.Serial.Port, state.cfg.Serial.BaudRate, state.cfg.Monitor.BufferSize)
	source := state.cfg.Serial.Port
	var err error
	if state.useMock {
		source = "simulated board"
		err = mon.Attach(startMockSampler(state.cfg))
	} else {
		err = mon.Connect()
	}
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to connect to %s: %w", source, err), state.window)
		return
	}

	state.mon = mon
	state.updated = make(chan struct{})
	state.connectBtn.SetIcon(theme.LogoutIcon())
	state.status.SetText("Connected to " + source)
	log.Printf("Connected to %s", source)

	go func(done chan struct{}) {
		defer close(done)
		for r := range mon.Reports() {
			fyne.Do(func() {
				state.view.update(r)
			})
		}
	}(state.updated)
}

// disconnect closes the monitor and waits for the update goroutine.
func disconnect(state *appState) {
	if state.mon == nil {
		return
	}
	if err := state.mon.Close(); err != nil {
		log.Printf("Error closing monitor: %v", err)
	}
	<-state.updated
	state.mon = nil
	state.updated = nil
}

// startMockSampler runs a sampler on a simulated board and returns the read
// end of its console. Closing the reader stops the sampler at its next write.
func startMockSampler(cfg *config.Config) io.ReadCloser {
	pr, pw := io.Pipe()

	b := board.New(board.NewMock(&cfg.Mock, cfg.ADC.Reference), hal.NewWriterConsole(pw))
	s := sampler.New(b, sampler.Options{
		Variant:   sampler.Full,
		Reference: cfg.ADC.Reference,
		Prompt:    report.Prompt,
	})

	go func() {
		err := s.Run()
		log.Printf("Simulated sampler stopped: %v", err)
		b.Close()
		pw.CloseWithError(err)
	}()

	return pr
}
