//go:build rp2040 || rp2350

// Command mcu-pico is MCU-B's entry point: it starts Core-T's timer/encoder
// producer and Core-D's single dispatch loop, wired together over the
// shared event queue and the Launcher handshake, grounded on
// core1Main/core0Main's split in Core1.cpp/CarrtMain.cpp.
package main

import (
	"context"
	"time"

	"carrt/config"
	"carrt/corestate"
	"carrt/errcode"
	"carrt/event"
	"carrt/logx"
	"carrt/mcu/cored"
	"carrt/mcu/coret"
	"carrt/mcu/serialio"
	"carrt/wire"
)

func main() {
	log := logx.Default()
	cfg := config.Default()

	time.Sleep(2 * time.Second) // let the board/USB settle before first use

	ctx := context.Background()
	port, err := serialio.Open(ctx, serialio.DefaultConfig())
	if err != nil {
		log.Error("failed to open UART link", "err", err)
		return
	}
	link := wire.NewLink(port)

	reg := wire.NewRegistry()
	if err := wire.RegisterAll(reg); err != nil {
		log.Error("failed to build message registry", "err", err)
		return
	}

	queue := event.NewQueue(cfg.Timing.QueueCapacity)
	state := corestate.NewSharedState()
	launcher := coret.NewLauncher(4)

	timer := coret.NewTimer(state, queue)
	go coret.Run(ctx, launcher, timer, queue)

	readyErr := launcher.WaitReady(2 * time.Second)
	if readyErr != nil {
		log.Error("core-t handshake failed", "err", readyErr)
	}

	dispatcher := cored.New(link, reg, queue, state, launcher, cfg.Timing.DispatchIdleSleep)
	dispatcher.Log = log

	ready := &wire.PicoReadyMsg{Time: uint32(time.Now().UnixMilli())}
	if err := wire.Send(link, ready); err != nil {
		log.Error("failed to announce boot", "err", err)
	}
	if readyErr != nil {
		rpt := &wire.ErrorReportMsg{Fatal: 1, Code: errcode.MakePicoErrorID(errcode.ModuleMulticore, 1, 1), Time: uint32(time.Now().UnixMilli())}
		if err := wire.Send(link, rpt); err != nil {
			log.Error("failed to report core-t handshake failure", "err", err)
		}
	}

	dispatcher.Run(ctx)
}
