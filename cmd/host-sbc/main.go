//go:build !(rp2040 || rp2350)

// Command host-sbc is SBC-A's entry point: it opens the UART link to
// MCU-B, starts the client's single dispatch loop, and sends the default
// telemetry mask half a second after start-up. It does not wait for the
// PicoReady handshake and does not subscribe to nav updates.
package main

import (
	"context"
	"os"
	"time"

	"github.com/maruel/interrupt"

	"carrt/bus"
	"carrt/config"
	"carrt/host"
	"carrt/host/hostlink"
	"carrt/logx"
	"carrt/wire"
)

func main() {
	log := logx.Default()
	cfg := config.Default()

	port, err := hostlink.Open(hostlink.Config{
		Device:      cfg.Serial.Device,
		BaudRate:    uint32(cfg.Serial.BaudRate),
		ReadTimeout: 50 * time.Millisecond,
	})
	if err != nil {
		log.Error("failed to open host link", "err", err)
		os.Exit(1)
	}
	defer port.Close()

	link := wire.NewLink(port)
	reg := wire.NewRegistry()
	if err := wire.RegisterAll(reg); err != nil {
		log.Error("failed to build message registry", "err", err)
		os.Exit(1)
	}

	b := bus.NewBus(4)

	handlers := host.Handlers{
		OnPicoReady: func(m wire.PicoReadyMsg) {
			log.Info("pico ready", "bootTimeMs", m.Time)
		},
		OnErrorReport: func(m wire.ErrorReportMsg) {
			log.Error("pico error report", "fatal", m.Fatal != 0, "code", m.Code)
		},
	}

	client := host.New(link, reg, handlers, cfg.Timing, b)

	interrupt.HandleCtrlC()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-interrupt.Channel
		log.Info("shutting down on signal")
		cancel()
	}()

	go func() {
		time.Sleep(500 * time.Millisecond) // give the dispatch loop a head start
		if err := client.SetTelemetryMask(defaultTelemetryMask(cfg.Telemetry)); err != nil {
			log.Error("failed to set telemetry mask", "err", err)
		}
	}()

	client.Run(ctx)
}

func defaultTelemetryMask(t config.Telemetry) uint8 {
	return t.DefaultMask
}
