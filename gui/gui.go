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

package gui

import "github.com/jetsetilly/gopher8/hardware/video"

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Sentinal error returned if the GUI does not support a requested feature.
const UnsupportedGuiFeature = "unsupported gui feature: %v"

// PixelRenderer is implemented by GUIs that can display the contents of the
// machine's framebuffer.
type PixelRenderer interface {
	// Render a snapshot of the framebuffer. May be called from the emulation
	// goroutine.
	Render(pixels [video.Height][video.Width]bool) error
}

// AudioMixer is implemented by anything that can consume the state of the
// buzzer, sixty times per emulated second. GUIs with a sound device
// implement it, as does the wavwriter package.
type AudioMixer interface {
	SetBuzzer(active bool) error

	// EndMixing is called when the emulation is finished with the mixer.
	EndMixing() error
}
