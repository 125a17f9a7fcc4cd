package game

// File image.go holds the pixel images that tiles, sprites and items are drawn
// with.

import (
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/dekarrin/bitsy/internal/util"
)

const (
	// DimensionSD is the width and height of a standard-definition image.
	DimensionSD = 8

	// DimensionHD is the width and height of a high-definition image.
	DimensionHD = 16

	frameSeparator = ">"
)

// Image is a square 1-bit image. Pixels holds the pixels in row-major order;
// it has 64 entries for an 8x8 image or 256 for a 16x16 one.
type Image struct {
	Pixels []uint8
}

// Dimension returns the width (and height) of the image.
func (img Image) Dimension() int {
	if len(img.Pixels) >= DimensionHD*DimensionHD {
		return DimensionHD
	}
	return DimensionSD
}

// Equal returns whether the two images have the same pixels.
func (img Image) Equal(o Image) bool {
	if len(img.Pixels) != len(o.Pixels) {
		return false
	}
	for i := range img.Pixels {
		if img.Pixels[i] != o.Pixels[i] {
			return false
		}
	}
	return true
}

// Copy returns a deeply-copied Image.
func (img Image) Copy() Image {
	pixels := make([]uint8, len(img.Pixels))
	copy(pixels, img.Pixels)
	return Image{Pixels: pixels}
}

func (img Image) String() string {
	dim := img.Dimension()

	var sb strings.Builder
	for i, px := range img.Pixels {
		if i > 0 && i%dim == 0 {
			sb.WriteRune('\n')
		}
		if px == 1 {
			sb.WriteRune('1')
		} else {
			sb.WriteRune('0')
		}
	}
	return sb.String()
}

// Invert swaps every set pixel with an unset one.
func (img *Image) Invert() {
	for i := range img.Pixels {
		img.Pixels[i] = 1 - img.Pixels[i]
	}
}

// Flip flips the image vertically.
func (img *Image) Flip() {
	dim := img.Dimension()
	pixels := make([]uint8, 0, len(img.Pixels))
	for row := dim - 1; row >= 0; row-- {
		pixels = append(pixels, img.Pixels[row*dim:(row+1)*dim]...)
	}
	img.Pixels = pixels
}

// Mirror mirrors the image horizontally.
func (img *Image) Mirror() {
	dim := img.Dimension()
	pixels := make([]uint8, 0, len(img.Pixels))
	for row := 0; row < dim; row++ {
		for x := dim - 1; x >= 0; x-- {
			pixels = append(pixels, img.Pixels[row*dim+x])
		}
	}
	img.Pixels = pixels
}

// Rotate rotates the image 90 degrees clockwise.
func (img *Image) Rotate() {
	dim := img.Dimension()
	pixels := make([]uint8, 0, len(img.Pixels))

	// bottom-left corner upward, then the next column to the right
	for x := 0; x < dim; x++ {
		for y := dim - 1; y >= 0; y-- {
			pixels = append(pixels, img.Pixels[y*dim+x])
		}
	}
	img.Pixels = pixels
}

// ParseImage parses a single image. The dimension is taken from the length of
// the first line and exactly that many lines of that many pixels are read;
// anything past them is ignored. A "NaN" pixel, which some old editors wrote,
// is read as 0 and noted in the returned warnings.
func ParseImage(s string, warns []error) (Image, []error, error) {
	if strings.Contains(s, "NaN") {
		warns = append(warns, bitsyerrors.New(bitsyerrors.KindImage, "NaN pixel read as 0"))
		s = strings.ReplaceAll(s, "NaN", "0")
	}

	lines := util.Lines(strings.TrimSpace(s))
	if len(lines) < 1 {
		return Image{}, warns, bitsyerrors.New(bitsyerrors.KindImage, "no pixel data")
	}

	// an 8x8 image may have extra pixels on its rows, so HD also needs the
	// lines for it
	dim := DimensionSD
	if len(lines[0]) >= DimensionHD && len(lines) >= DimensionHD {
		dim = DimensionHD
	}

	if len(lines) < dim {
		return Image{}, warns, bitsyerrors.Newf(bitsyerrors.KindImage, "need %d lines of pixels but got %d", dim, len(lines))
	}

	pixels := make([]uint8, 0, dim*dim)
	for row, line := range lines[:dim] {
		if len(line) < dim {
			return Image{}, warns, bitsyerrors.Newf(bitsyerrors.KindImage, "row %d: need %d pixels but got %d", row, dim, len(line))
		}
		for i := 0; i < dim; i++ {
			if line[i] == '1' {
				pixels = append(pixels, 1)
			} else {
				pixels = append(pixels, 0)
			}
		}
	}

	return Image{Pixels: pixels}, warns, nil
}

// Animation is the sequence of frames that something is drawn with. Most
// things only have one frame.
type Animation []Image

// Equal returns whether both animations have equal frames in the same order.
func (anim Animation) Equal(o Animation) bool {
	if len(anim) != len(o) {
		return false
	}
	for i := range anim {
		if !anim[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Copy returns a deeply-copied Animation.
func (anim Animation) Copy() Animation {
	if anim == nil {
		return nil
	}
	aCopy := make(Animation, len(anim))
	for i := range anim {
		aCopy[i] = anim[i].Copy()
	}
	return aCopy
}

func (anim Animation) String() string {
	frames := make([]string, len(anim))
	for i := range anim {
		frames[i] = anim[i].String()
	}
	return strings.Join(frames, "\n"+frameSeparator+"\n")
}

// ParseAnimation parses one or more images separated by lines that contain
// only ">".
func ParseAnimation(s string, warns []error) (Animation, []error, error) {
	var frames []string
	var cur []string
	for _, line := range util.Lines(s) {
		if line == frameSeparator {
			frames = append(frames, strings.Join(cur, "\n"))
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	frames = append(frames, strings.Join(cur, "\n"))

	anim := make(Animation, 0, len(frames))
	for i := range frames {
		var img Image
		var err error
		img, warns, err = ParseImage(frames[i], warns)
		if err != nil {
			return nil, warns, bitsyerrors.Wrapf(err, bitsyerrors.KindImage, "frame %d", i)
		}
		anim = append(anim, img)
	}

	return anim, warns, nil
}
