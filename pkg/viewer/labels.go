package viewer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	titleSize = 20.0
	labelSize = 14.0
)

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
	labelFontErr  error
)

func loadLabelFont() (*truetype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = truetype.Parse(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// drawText draws text with its baseline at y. When centered, x is the
// horizontal middle of the text instead of its left edge.
func drawText(img *image.RGBA, text string, x, y int, size float64, col color.Color, centered bool) error {
	f, err := loadLabelFont()
	if err != nil {
		return fmt.Errorf("failed to load label font: %w", err)
	}

	if centered {
		face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
		x -= font.MeasureString(face, text).Round() / 2
		face.Close()
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(size)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(col))
	c.SetHinting(font.HintingFull)

	_, err = c.DrawString(text, freetype.Pt(x, y))
	return err
}

// annotate draws the title and the axis labels
func annotate(img *image.RGBA, s *scene, title string) error {
	if title != "" {
		if err := drawText(img, title, img.Bounds().Dx()/2, 32, titleSize, textColor, true); err != nil {
			return err
		}
	}

	for _, a := range s.axes() {
		// Push the label a little beyond the end of the axis
		dx, dy := a.to.X-a.from.X, a.to.Y-a.from.Y
		length := math.Hypot(dx, dy)
		lx, ly := a.to.X, a.to.Y
		if length > 0 {
			lx += dx / length * 16
			ly += dy / length * 16
		}
		if err := drawText(img, a.label, int(lx), int(ly)+int(labelSize/2), labelSize, textColor, true); err != nil {
			return err
		}
	}

	return nil
}
