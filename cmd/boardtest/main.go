// cmd/boardtest/main.go
//
// Bring-up check for a freshly wired node. Two stages:
//
//  1. Wiring: while the button is held, the LED and buzzer follow it.
//  2. Link: the initiator sends a counter value and expects value+1 back;
//     the responder echoes every received value incremented. Run one board
//     as node-a and the other as node-b.
package main

import (
	"context"
	"time"

	"morselink-go/internal/platform"
	"morselink-go/services/config"
	"morselink-go/types"
	"morselink-go/x/strconvx"
	"morselink-go/x/strx"
)

const (
	device       = "node-a" // flash the peer board with "node-b"
	wiringStage  = 10 * time.Second
	echoInterval = time.Second
	echoWait     = 500 * time.Millisecond
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boardtest: boot")

	cfg, err := config.Node(device)
	if err != nil {
		println("boardtest: config:", err.Error())
		return
	}
	res, err := platform.Default(cfg)
	if err != nil {
		println("boardtest: platform:", err.Error())
		return
	}
	ctx := context.Background()

	println("boardtest: stage 1, hold the button; LED and buzzer should follow")
	deadline := time.Now().Add(wiringStage)
	for time.Now().Before(deadline) {
		held := !res.Button.Get() // active-low
		res.LED.Set(held)
		res.Buzzer.Set(held)
		time.Sleep(10 * time.Millisecond)
	}
	res.LED.Set(false)
	res.Buzzer.Set(false)

	ready, reply := res.Radio.Setup(ctx)
	println("boardtest: module ready:", ready, "reply:", reply)

	println("boardtest: stage 2, role:", strx.Coalesce(string(cfg.Role), string(types.RoleInitiator)))
	switch cfg.Role {
	case types.RoleResponder:
		respond(ctx, res)
	default:
		initiate(ctx, res)
	}
}

// initiate sends an incrementing value and blinks the LED on each correct
// value+1 echo from the peer.
func initiate(ctx context.Context, res platform.Resources) {
	value := 0
	for {
		value++
		if err := res.Radio.SendLine(strconvx.Itoa(value)); err != nil {
			println("boardtest: send:", err.Error())
		}

		deadline := time.Now().Add(echoWait)
		ok := false
		for time.Now().Before(deadline) {
			if !res.Radio.Available(ctx) {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			line, _ := res.Radio.ReadLine()
			got, err := strconvx.Atoi(line)
			if err == nil && got == value+1 {
				ok = true
			}
			break
		}
		if ok {
			println("boardtest: echo ok:", value)
			res.LED.Set(true)
			time.Sleep(100 * time.Millisecond)
			res.LED.Set(false)
		} else {
			println("boardtest: no echo for:", value)
		}
		time.Sleep(echoInterval)
	}
}

// respond echoes every received value incremented by one.
func respond(ctx context.Context, res platform.Resources) {
	for {
		if !res.Radio.Available(ctx) {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		line, _ := res.Radio.ReadLine()
		got, err := strconvx.Atoi(line)
		if err != nil {
			println("boardtest: bad line:", line)
			continue
		}
		res.LED.Set(true)
		if err := res.Radio.SendLine(strconvx.Itoa(got + 1)); err != nil {
			println("boardtest: send:", err.Error())
		}
		res.LED.Set(false)
	}
}
