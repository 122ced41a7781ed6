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

// Package wavwriter allows writing of the buzzer channel to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety and
// written to disk on program end. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
)

// the generated wave matches what the sdlaudio package plays
const (
	sampleFreq     = sdlaudio.SampleFreq
	toneFreq       = sdlaudio.ToneFreq
	amplitude      = 12
	silence        = 128
	samplesPerTick = sampleFreq / timer.Rate
)

// WavWriter implements the gui.AudioMixer interface.
type WavWriter struct {
	filename string
	buffer   []int
	phase    int
}

// sanity check.
var _ gui.AudioMixer = (*WavWriter)(nil)

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0),
	}
	return aw, nil
}

// SetBuzzer implements the gui.AudioMixer interface.
func (aw *WavWriter) SetBuzzer(active bool) error {
	halfPeriod := sampleFreq / toneFreq / 2

	for i := 0; i < samplesPerTick; i++ {
		if active {
			if (aw.phase/halfPeriod)%2 == 0 {
				aw.buffer = append(aw.buffer, silence+amplitude)
			} else {
				aw.buffer = append(aw.buffer, silence-amplitude)
			}
			aw.phase++
		} else {
			aw.buffer = append(aw.buffer, silence)
			aw.phase = 0
		}
	}

	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "audio written to %s", aw.filename)

	return nil
}
