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

// Package sdlplay provides the playmode window. The machine's framebuffer is
// streamed to a single scaled SDL texture and host keyboard events are
// translated to CHIP-8 keypad events.
//
// Creation and the Service() function MUST only happen on the main thread.
// Render() may be called from the emulation goroutine.
package sdlplay

import (
	"io"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/hardware/video"

	"github.com/veandco/go-sdl2/sdl"
)

// number of bytes per pixel in the texture (RGBA).
const pixelDepth = 4

// the window scale used when no scale request has been received.
const defaultScale = 20.0

// SdlPlay is the playmode window.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// all audio is handled by the sdlaudio package
	snd *sdlaudio.Audio

	// connects the SDL event pump with the playmode loop
	eventChannel chan gui.Event

	// the amount of scaling applied to each pixel
	scale float32

	// the byte array we copy to the texture before applying it to the
	// renderer
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay() (*SdlPlay, error) {
	scr := &SdlPlay{
		scale:  defaultScale,
		pixels: make([]byte, video.Width*video.Height*pixelDepth),
	}

	var err error

	err = sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.snd, err = sdlaudio.NewAudio()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.setScaling(scr.scale)
	setupService()

	// the window is opened on a ReqSetVisibility request rather than on
	// startup

	return scr, nil
}

// Destroy frees resources used by the window.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	_ = scr.snd.EndMixing()

	err := scr.texture.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.renderer.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.window.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}
}

func (scr *SdlPlay) setScaling(scale float32) {
	scr.scale = scale

	w := int32(float32(video.Width) * scale)
	h := int32(float32(video.Height) * scale)
	scr.window.SetSize(w, h)

	// everything drawn through the renderer is scaled with it
	_ = scr.renderer.SetScale(scale, scale)
}

// Render implements the gui.PixelRenderer interface.
func (scr *SdlPlay) Render(pixels [video.Height][video.Width]bool) error {
	i := 0
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			var v byte
			if pixels[y][x] {
				v = 255
			}
			scr.pixels[i] = v
			scr.pixels[i+1] = v
			scr.pixels[i+2] = v
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// SetBuzzer implements the gui.AudioMixer interface.
func (scr *SdlPlay) SetBuzzer(active bool) error {
	return scr.snd.SetBuzzer(active)
}

// EndMixing implements the gui.AudioMixer interface.
func (scr *SdlPlay) EndMixing() error {
	return scr.snd.EndMixing()
}

// SetFeature implements the gui.GUI interface.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetVisibility:
		if args[0].(bool) {
			scr.window.Show()
		} else {
			scr.window.Hide()
		}

	case gui.ReqSetScale:
		scr.setScaling(args[0].(float32))

	case gui.ReqSetEventChannel:
		scr.eventChannel = args[0].(chan gui.Event)

	case gui.ReqMuteAudio:
		scr.snd.Mute(args[0].(bool))

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}
