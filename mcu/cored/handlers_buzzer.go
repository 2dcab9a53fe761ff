package cored

import (
	"time"

	"carrt/errcode"
	"carrt/x/mathx"
	"carrt/x/ramp"
	"carrt/x/timex"
)

// Tone/duration constants carried from original_source/source/rpi/drivers/
// Buzzer.{h,cpp}: kBeepDefault{Beep,Chirp}Tone and the readyChime tri-tone
// sequence (collisionChime has no consumer here: motion planning and
// obstacle handling are out of scope). The source ran this driver on the
// rpi side against a software PWM call; this rewrite gives Core-D the same
// sequences against the onboard hardware-PWM buzzer spec §6 assigns to
// MCU-B.
const (
	defaultBeepToneHz    = 40
	defaultChirpToneHz   = 100
	defaultChirpDuration = 20 * time.Millisecond

	readyTriTone1Hz = 0
	readyTriTone2Hz = 200
	readyTriTone3Hz = 100

	buzzerAttackSteps = 6
	buzzerAttackMs    = 15
)

// buzzTone drives the buzzer at toneHz for duration. Buzzer.cpp snaps the
// PWM on then off; here the attack ramps the duty cycle up over a short
// window using x/ramp's linear stepper instead of snapping, to avoid a
// click on the line. No-op if no Buzzer is wired (consistent with every
// other optional halio peripheral on Dispatcher).
func (d *Dispatcher) buzzTone(toneHz uint32, duration time.Duration) {
	if d.Buzzer == nil {
		return
	}
	top := d.Buzzer.Top()
	target := mathx.Clamp(top/2, uint32(0), top)

	if err := d.Buzzer.SetPeriod(time.Duration(timex.PeriodFromHz(toneHz))); err != nil {
		d.sendError(false, errcode.MakePicoErrorID(errcode.ModuleBuzzer, 1, 0))
		return
	}

	attack := time.Duration(buzzerAttackMs) * time.Millisecond
	if attack > duration {
		attack = duration
	}
	tick := func(wait time.Duration) bool { time.Sleep(wait); return true }
	step := func(level uint16) { _ = d.Buzzer.Set(uint32(level)) }
	ramp.StartLinear(0, uint16(target), uint16(top), uint32(attack/time.Millisecond), buzzerAttackSteps, tick, step)

	if rest := duration - attack; rest > 0 {
		time.Sleep(rest)
	}
	_ = d.Buzzer.Set(0)
}

func (d *Dispatcher) buzzBeep(duration time.Duration, toneHz uint32) { d.buzzTone(toneHz, duration) }

func (d *Dispatcher) buzzChirp() { d.buzzTone(defaultChirpToneHz, defaultChirpDuration) }

// buzzErrorChime mirrors Buzzer::errorChime(): three short beeps.
func (d *Dispatcher) buzzErrorChime() {
	for i := 0; i < 3; i++ {
		d.buzzBeep(50*time.Millisecond, defaultBeepToneHz)
		if i < 2 {
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// buzzTriTone mirrors Buzzer::triTone()'s fixed timing: 50ms/75ms-gap/
// 100ms/75ms-gap/150ms.
func (d *Dispatcher) buzzTriTone(tone1, tone2, tone3 uint32) {
	d.buzzTone(tone1, 50*time.Millisecond)
	time.Sleep(75 * time.Millisecond)
	d.buzzTone(tone2, 100*time.Millisecond)
	time.Sleep(75 * time.Millisecond)
	d.buzzTone(tone3, 150*time.Millisecond)
}

func (d *Dispatcher) buzzReadyChime() {
	d.buzzTriTone(readyTriTone1Hz, readyTriTone2Hz, readyTriTone3Hz)
}
