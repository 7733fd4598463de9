// Package gif renders the plies of a match as an animated GIF.
package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/dobutsu/game"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var mono *truetype.Font

const (
	dpi        = 144.0
	fontsize   = 12.0
	lineheight = 1.2
	padding    = 10

	// frame delays, in hundredths of a second
	plyDelay   = 50
	finalDelay = 300
)

func init() {
	var err error
	if mono, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var palette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// lastActioner is implemented by meta states that know the move that led to the current state.
type lastActioner interface {
	LastAction() string
}

// Encoder renders every state it is given as a frame of an animated GIF.
// It implements dobutsu.OutputEncoder.
type Encoder struct {
	H, W       int // frame size, fixed by the first frame
	maxH, maxW int

	drawer font.Drawer
	dy     int
	out    *gif.GIF
	w      io.Writer
}

// NewGifEncoder creates an encoder whose frames are at most h by w pixels. The GIF is written to out
// on Flush.
func NewGifEncoder(out io.Writer, h, w int) *Encoder {
	face := truetype.NewFace(mono, &truetype.Options{
		Size:    fontsize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	return &Encoder{
		maxH:   h,
		maxW:   w,
		drawer: font.Drawer{Src: image.Black, Face: face},
		dy:     int(math.Ceil(fontsize * lineheight * dpi / 72)),
		out:    &gif.GIF{LoopCount: -1},
		w:      out,
	}
}

// lines is the text of one frame: the board, the game name, the move that was played and, once the
// game is over, the winner.
func lines(ms game.MetaState) []string {
	s := ms.State()
	var move string
	if la, ok := ms.(lastActioner); ok {
		move = la.LastAction()
	}
	retVal := strings.Split(strings.TrimRight(fmt.Sprintf("%v", s), "\n"), "\n")
	retVal = append(retVal,
		ms.Name(),
		fmt.Sprintf("Game %d, move %d %s", ms.GameNumber(), s.MoveNumber(), move),
	)
	if ended, winner := ms.Result(); ended {
		retVal = append(retVal, fmt.Sprintf("Winner: %v", winner))
	}
	return retVal
}

// size fixes the frame size from the first frame. One spare line is kept for the winner, and the
// width leaves room for longer move numbers.
func (enc *Encoder) size(text []string) {
	var w int
	for _, l := range append(text, "Winner: Second", text[len(text)-1]+"000") {
		if lw := font.MeasureString(enc.drawer.Face, l).Ceil(); lw > w {
			w = lw
		}
	}
	enc.W = min(w+2*padding, enc.maxW)
	enc.H = min((len(text)+1)*enc.dy+2*padding, enc.maxH)
}

// Encode draws the meta state as a new frame.
func (enc *Encoder) Encode(ms game.MetaState) error {
	text := lines(ms)
	if enc.W == 0 {
		enc.size(text)
	}

	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), palette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	enc.drawer.Dst = im
	for i, l := range text {
		enc.drawer.Dot = fixed.P(padding, padding+(i+1)*enc.dy)
		enc.drawer.DrawString(l)
	}

	delay := plyDelay
	if ended, _ := ms.Result(); ended {
		delay = finalDelay
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Frames returns the number of frames encoded so far.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error {
	if enc.w == nil {
		return errors.New("gif encoder has no writer")
	}
	if len(enc.out.Image) == 0 {
		return errors.New("nothing to encode")
	}
	return errors.WithStack(gif.EncodeAll(enc.w, enc.out))
}
