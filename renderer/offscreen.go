package renderer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame is one rendered frame's RGBA pixels, bottom row first.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// OffscreenRenderer is the RGBA8 framebuffer every frame is drawn into,
// with a ring of pixel pack buffers for asynchronous readback.
type OffscreenRenderer struct {
	fbo       uint32
	textureID uint32
	width     int
	height    int
	pbos      [2]uint32
	pboIndex  int
	pending   bool
}

const numBuffers = 3 // frames queued between renderer and encoder

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid offscreen size %dx%d", width, height)
	}
	or := &OffscreenRenderer{width: width, height: height}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		or.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete")
	}

	gl.GenBuffers(int32(len(or.pbos)), &or.pbos[0])
	or.allocPBOs()
	return or, nil
}

func (or *OffscreenRenderer) allocPBOs() {
	size := or.width * or.height * 4
	for _, pbo := range or.pbos {
		gl.BindBuffer(gl.PIXEL_PACK_BUFFER, pbo)
		gl.BufferData(gl.PIXEL_PACK_BUFFER, size, nil, gl.STREAM_READ)
	}
	gl.BindBuffer(gl.PIXEL_PACK_BUFFER, 0)
	or.pending = false
}

// Resize reallocates the color texture and readback buffers.
func (or *OffscreenRenderer) Resize(width, height int) {
	or.width, or.height = width, height
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	or.allocPBOs()
}

func (or *OffscreenRenderer) Destroy() {
	gl.DeleteFramebuffers(1, &or.fbo)
	gl.DeleteTextures(1, &or.textureID)
	if or.pbos[0] != 0 {
		gl.DeleteBuffers(int32(len(or.pbos)), &or.pbos[0])
	}
}

// readPixelsAsync queues a readback of the current frame and returns the
// pixels queued by the previous call, or nil on the first call.
func (or *OffscreenRenderer) readPixelsAsync() ([]byte, error) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, or.fbo)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.BindBuffer(gl.PIXEL_PACK_BUFFER, or.pbos[or.pboIndex])
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	var pixels []byte
	var err error
	if or.pending {
		pixels, err = or.mapPBO((or.pboIndex + len(or.pbos) - 1) % len(or.pbos))
	}
	or.pending = true
	or.pboIndex = (or.pboIndex + 1) % len(or.pbos)
	gl.BindBuffer(gl.PIXEL_PACK_BUFFER, 0)
	return pixels, err
}

// flushPixels returns the frame queued by the last readPixelsAsync call.
func (or *OffscreenRenderer) flushPixels() ([]byte, error) {
	if !or.pending {
		return nil, nil
	}
	or.pending = false
	pixels, err := or.mapPBO((or.pboIndex + len(or.pbos) - 1) % len(or.pbos))
	gl.BindBuffer(gl.PIXEL_PACK_BUFFER, 0)
	return pixels, err
}

func (or *OffscreenRenderer) mapPBO(index int) ([]byte, error) {
	size := or.width * or.height * 4
	gl.BindBuffer(gl.PIXEL_PACK_BUFFER, or.pbos[index])
	ptr := gl.MapBufferRange(gl.PIXEL_PACK_BUFFER, 0, size, gl.MAP_READ_BIT)
	if ptr == nil {
		return nil, fmt.Errorf("failed to map PBO %d", index)
	}
	pixels := make([]byte, size)
	copy(pixels, unsafe.Slice((*byte)(ptr), size))
	gl.UnmapBuffer(gl.PIXEL_PACK_BUFFER)
	return pixels, nil
}

// RecordOptions configures Record.
type RecordOptions struct {
	Out        string
	FPS        int
	Duration   float64 // seconds of shader time at scale 1
	Codec      string  // h264 or hevc
	Format     string  // mp4, webm or gif; empty derives it from Out
	Software   bool    // skip the platform hardware encoder
	FFmpegPath string
}

// Record renders Duration*FPS frames from shader time zero at the clock's
// current time scale and encodes them with ffmpeg. The render size is the
// renderer's fixed size.
func (r *Renderer) Record(ctx context.Context, opts RecordOptions) error {
	if opts.FPS <= 0 {
		return fmt.Errorf("invalid frame rate %d", opts.FPS)
	}
	total := int(math.Round(opts.Duration * float64(opts.FPS)))
	if total <= 0 {
		return fmt.Errorf("duration %gs at %d fps produces no frames", opts.Duration, opts.FPS)
	}
	if r.program == 0 {
		return errors.New("no shader program compiled")
	}
	width, height := r.Size()
	r.logger.Printf("Recording %d frames at %dx%d to %s", total, width, height, opts.Out)

	frameChan := make(chan *Frame, numBuffers)
	stop := make(chan struct{})
	encoderDoneChan := make(chan error, 1)
	go r.runEncoder(opts, width, height, frameChan, stop, encoderDoneChan)

	send := func(pixels []byte, pts int64) bool {
		select {
		case frameChan <- &Frame{Pixels: pixels, PTS: pts}:
			return true
		case <-stop:
			return false
		}
	}

	r.clock.Reset()
	timeStep := 1.0 / float64(opts.FPS)
	var renderErr error
	var sent int64
	for i := 0; i < total && renderErr == nil; i++ {
		if err := ctx.Err(); err != nil {
			renderErr = err
			break
		}
		r.RenderFrame(r.clock.Time())
		r.clock.Step(timeStep * r.clock.TimeScale())

		pixels, err := r.target.readPixelsAsync()
		switch {
		case err != nil:
			renderErr = fmt.Errorf("reading frame %d: %w", i, err)
		case pixels != nil:
			if !send(pixels, sent) {
				renderErr = errors.New("encoder stopped")
			}
			sent++
		}
	}
	if renderErr == nil {
		pixels, err := r.target.flushPixels()
		if err != nil {
			renderErr = fmt.Errorf("reading last frame: %w", err)
		} else if pixels != nil {
			send(pixels, sent)
		}
	}
	close(frameChan)

	encodeErr := <-encoderDoneChan
	if renderErr != nil {
		return renderErr
	}
	return encodeErr
}

// runEncoder is the consumer: it pipes raw frames into ffmpeg. stop is
// closed when ffmpeg can no longer accept frames.
func (r *Renderer) runEncoder(opts RecordOptions, width, height int, frameChan <-chan *Frame, stop chan<- struct{}, doneChan chan<- error) {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := encoderArgs(opts, width, height, runtime.GOOS)
	r.logger.Printf("Encoding with %v", outputArgs)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(opts.Out, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if opts.FFmpegPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(opts.FFmpegPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// unblock writers if ffmpeg exits before reading everything
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	var writeErr error
	for frame := range frameChan {
		if writeErr != nil {
			continue
		}
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			writeErr = fmt.Errorf("writing frame %d to ffmpeg: %w", frame.PTS, err)
			close(stop)
		}
	}
	pipeWriter.Close()

	if err := <-errc; err != nil {
		doneChan <- fmt.Errorf("ffmpeg: %w", err)
		return
	}
	doneChan <- writeErr
}

// OutputFormat resolves the container of a recording.
func OutputFormat(opts RecordOptions) string {
	if opts.Format != "" {
		return strings.ToLower(opts.Format)
	}
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(opts.Out), ".")); ext {
	case "gif", "webm", "mp4", "mov", "mkv":
		return ext
	}
	return "mp4"
}

// encoderArgs builds the ffmpeg input and output arguments. Frames arrive
// bottom row first, so every output is flipped.
func encoderArgs(opts RecordOptions, width, height int, goos string) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": opts.FPS,
	}

	format := OutputFormat(opts)
	switch format {
	case "gif":
		return inputArgs, ffmpeg.KwArgs{
			"vf":   "vflip,split[a][b];[a]palettegen[p];[b][p]paletteuse",
			"loop": 0,
		}
	case "webm":
		return inputArgs, ffmpeg.KwArgs{
			"vf":      "vflip",
			"c:v":     "libvpx-vp9",
			"b:v":     "4M",
			"pix_fmt": "yuv420p",
		}
	}

	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
		"b:v":     "25M",
	}
	hevc := opts.Codec == "hevc"
	switch {
	case opts.Software:
		outputArgs["c:v"] = softwareCodec(hevc)
	case goos == "linux":
		if hevc {
			outputArgs["c:v"] = "hevc_nvenc"
		} else {
			outputArgs["c:v"] = "h264_nvenc"
		}
		outputArgs["preset"] = "p2"
	case goos == "darwin":
		if hevc {
			outputArgs["c:v"] = "hevc_videotoolbox"
		} else {
			outputArgs["c:v"] = "h264_videotoolbox"
		}
	default:
		outputArgs["c:v"] = softwareCodec(hevc)
	}
	if hevc && (format == "mp4" || format == "mov") {
		outputArgs["tag:v"] = "hvc1"
	}
	return inputArgs, outputArgs
}

func softwareCodec(hevc bool) string {
	if hevc {
		return "libx265"
	}
	return "libx264"
}
