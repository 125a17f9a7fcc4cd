package game

import (
	"strings"
	"testing"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/stretchr/testify/assert"
)

const chequers = "10101010\n01010101\n10101010\n01010101\n10101010\n01010101\n10101010\n01010101"

// singlePixel returns an 8x8 image with only the pixel at x, y set.
func singlePixel(x, y int) Image {
	img := Image{Pixels: make([]uint8, 64)}
	img.Pixels[y*8+x] = 1
	return img
}

func Test_ParseImage(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		expectDim  int
		expectStr  string
		expectWarn bool
		expectErr  bool
	}{
		{
			name:      "8x8",
			input:     chequers,
			expectDim: 8,
			expectStr: chequers,
		},
		{
			name:      "16x16",
			input:     strings.Repeat("1111111100000000\n", 16),
			expectDim: 16,
			expectStr: strings.TrimSuffix(strings.Repeat("1111111100000000\n", 16), "\n"),
		},
		{
			name:      "surrounding whitespace is ignored",
			input:     "\n" + chequers + "\n\n",
			expectDim: 8,
			expectStr: chequers,
		},
		{
			name:      "pixels past the edge are dropped",
			input:     "1010101011\n" + chequers[9:] + "\n11111111",
			expectDim: 8,
			expectStr: chequers,
		},
		{
			name:      "extra pixels on the first row of an 8x8",
			input:     "1010101000000000\n" + chequers[9:],
			expectDim: 8,
			expectStr: chequers,
		},
		{
			name:       "NaN is read as 0",
			input:      "NaN1010101\n" + chequers[9:],
			expectDim:  8,
			expectStr:  "01010101\n" + chequers[9:],
			expectWarn: true,
		},
		{
			name:      "too few lines",
			input:     "10101010\n01010101",
			expectErr: true,
		},
		{
			name:      "short line",
			input:     strings.Replace(chequers, "01010101", "0101", 1),
			expectErr: true,
		},
		{
			name:      "nothing",
			input:     "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			img, warns, err := ParseImage(tc.input, nil)
			if tc.expectErr {
				assert.Error(err)
				assert.True(bitsyerrors.IsKind(err, bitsyerrors.KindImage))
				return
			}
			if !assert.NoError(err) {
				return
			}

			assert.Equal(tc.expectDim, img.Dimension())
			assert.Equal(tc.expectStr, img.String())
			if tc.expectWarn {
				assert.Len(warns, 1)
			} else {
				assert.Empty(warns)
			}
		})
	}
}

func Test_ParseAnimation(t *testing.T) {
	assert := assert.New(t)

	input := chequers + "\n>\n" + strings.Repeat("11111111\n", 8)

	anim, warns, err := ParseAnimation(input, nil)
	if !assert.NoError(err) {
		return
	}

	assert.Empty(warns)
	assert.Len(anim, 2)
	assert.Equal(chequers+"\n>\n"+strings.TrimSuffix(strings.Repeat("11111111\n", 8), "\n"), anim.String())
}

func Test_ParseAnimation_badFrame(t *testing.T) {
	assert := assert.New(t)

	_, _, err := ParseAnimation(chequers+"\n>\n1111", nil)

	assert.Error(err)
	assert.Contains(err.Error(), "frame 1")
}

func Test_Image_transforms(t *testing.T) {
	testCases := []struct {
		name      string
		transform func(img *Image)
		expect    Image
	}{
		{
			name:      "flip",
			transform: (*Image).Flip,
			expect:    singlePixel(1, 7),
		},
		{
			name:      "mirror",
			transform: (*Image).Mirror,
			expect:    singlePixel(6, 0),
		},
		{
			name:      "rotate",
			transform: (*Image).Rotate,
			expect:    singlePixel(7, 1),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			img := singlePixel(1, 0)
			tc.transform(&img)

			assert.Equal(tc.expect, img)
		})
	}
}

func Test_Image_Invert(t *testing.T) {
	assert := assert.New(t)

	img, _, _ := ParseImage(chequers, nil)
	img.Invert()

	assert.Equal("01010101", strings.Split(img.String(), "\n")[0])
}

func Test_Image_Rotate_hd(t *testing.T) {
	assert := assert.New(t)

	img := Image{Pixels: make([]uint8, 256)}
	img.Pixels[0] = 1
	img.Rotate()

	assert.Equal(uint8(1), img.Pixels[15])
	assert.Equal(16, img.Dimension())
}

func Test_Image_Copy(t *testing.T) {
	assert := assert.New(t)

	img := singlePixel(0, 0)
	imgCopy := img.Copy()
	imgCopy.Pixels[0] = 0

	assert.Equal(uint8(1), img.Pixels[0])
}
