package service

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/accentd/pkg/accent"
)

// Swatch geometry in pixels.
const (
	SwatchToneWidth = 112
	SwatchHeight    = 56
	swatchPadding   = 8
)

// SwatchService renders palette swatches as PNG images.
type SwatchService struct {
	accents *AccentService
	face    font.Face
}

// NewSwatchService creates a new swatch service.
func NewSwatchService(accents *AccentService) *SwatchService {
	return &SwatchService{
		accents: accents,
		face:    basicfont.Face7x13,
	}
}

// Render draws one block per palette tone, each labeled in its contrast color.
func (s *SwatchService) Render(raw string) ([]byte, error) {
	report, err := s.accents.Palette(raw)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, SwatchToneWidth*len(report.Tones), SwatchHeight))
	for i, tone := range report.Tones {
		bg, err := rgba(tone.Color)
		if err != nil {
			return nil, err
		}
		fg, err := rgba(tone.Contrast)
		if err != nil {
			return nil, err
		}

		block := image.Rect(i*SwatchToneWidth, 0, (i+1)*SwatchToneWidth, SwatchHeight)
		draw.Draw(img, block, image.NewUniform(bg), image.Point{}, draw.Src)

		s.label(img, fg, block.Min.X+swatchPadding, swatchPadding+13, tone.Role)
		s.label(img, fg, block.Min.X+swatchPadding, SwatchHeight-swatchPadding, tone.Color)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding swatch: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *SwatchService) label(dst draw.Image, c color.Color, x, y int, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: s.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func rgba(hex string) (color.RGBA, error) {
	c, ok := accent.Normalize(hex).RGB()
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", accent.ErrInvalidHex, hex)
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, nil
}
