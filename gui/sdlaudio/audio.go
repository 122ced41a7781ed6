// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlaudio plays the CHIP-8 buzzer through an SDL audio device. The
// buzzer is a plain square wave, generated here rather than sampled.
package sdlaudio

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/timer"

	"github.com/veandco/go-sdl2/sdl"
)

// SampleFreq is the frequency the sound device is opened with.
const SampleFreq = 44100

// ToneFreq is the pitch of the buzzer in Hz.
const ToneFreq = 440

// the buzzer is quiet. the amplitude is added to or subtracted from the
// silence value of the device
const amplitude = 12

// number of samples generated per call to SetBuzzer. the buzzer state
// arrives at the timer rate
const samplesPerTick = SampleFreq / timer.Rate

// samples queued beyond this limit are dropped. keeps latency down when the
// emulation runs ahead of the sound device
const queueLimit = samplesPerTick * 4

// Audio outputs the buzzer using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer []uint8

	// position within the square wave, in samples
	phase int

	muted bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	aud := &Audio{
		buffer: make([]uint8, samplesPerTick),
	}

	spec := &sdl.AudioSpec{
		Freq:     SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(samplesPerTick),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Mute silences the buzzer without stopping sample generation.
func (aud *Audio) Mute(muted bool) {
	aud.muted = muted
}

// SetBuzzer implements the gui.AudioMixer interface.
func (aud *Audio) SetBuzzer(active bool) error {
	if sdl.GetQueuedAudioSize(aud.id) > queueLimit {
		return nil
	}

	// half a period of the square wave, in samples
	halfPeriod := SampleFreq / ToneFreq / 2

	for i := range aud.buffer {
		if active && !aud.muted {
			if (aud.phase/halfPeriod)%2 == 0 {
				aud.buffer[i] = aud.spec.Silence + amplitude
			} else {
				aud.buffer[i] = aud.spec.Silence - amplitude
			}
			aud.phase++
		} else {
			aud.buffer[i] = aud.spec.Silence
			aud.phase = 0
		}
	}

	err := sdl.QueueAudio(aud.id, aud.buffer)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
