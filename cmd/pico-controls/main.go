//go:build rp2040

package main

import (
	"machine"
	"time"

	"controls-go/controls"
	"controls-go/drivers/ads1115"
	"controls-go/platform"
	"controls-go/services/panel"
	"controls-go/types"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// Selected at link time: -ldflags "-X main.board=pico-mux".
var board = "pico"

const pollEvery = 10 * time.Millisecond

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(1500 * time.Millisecond)

	_ = uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	logln("[controls] boot, board=" + board)

	cfg, err := panel.EmbeddedLayout(board)
	if err != nil {
		logln("[controls] layout: " + err.Error())
		return
	}

	var hal controls.Platform = platform.NewRP2()
	var exp *platform.Expander
	if board == "pico-ads" {
		machine.I2C0.Configure(machine.I2CConfig{
			SDA:       machine.I2C0_SDA_PIN,
			SCL:       machine.I2C0_SCL_PIN,
			Frequency: 400_000,
		})
		adc := ads1115.New(machine.I2C0)
		adc.Configure(ads1115.Config{})
		exp = platform.NewExpander(hal, adc, panel.ExpanderBase)
		hal = exp
	}

	p, err := panel.New(hal, cfg)
	if err != nil {
		logln("[controls] build: " + err.Error())
		return
	}
	p.Begin()
	logln("[controls] polling")

	tick := time.NewTicker(pollEvery)
	defer tick.Stop()
	var errs uint32
	for range tick.C {
		for _, c := range p.Poll() {
			report(c)
		}
		if exp != nil && exp.Errors() != errs {
			errs = exp.Errors()
			if err := exp.Err(); err != nil {
				logln("[controls] " + err.Error())
			}
		}
	}
}

func report(c types.Change) { logln("[controls] " + c.String()) }

// logln prints to the console and mirrors the line to UART0.
func logln(s string) {
	println(s)
	_, _ = uartx.UART0.Write([]byte(s + "\r\n"))
}
