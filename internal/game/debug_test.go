package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/stretchr/testify/assert"
)

func Test_Game_Summary(t *testing.T) {
	assert := assert.New(t)

	g := loadTestGame(t, "default.bitsy")

	summary := g.Summary(80)

	assert.Contains(summary, "Game Info")
	assert.Contains(summary, "Write your game's title here")
	assert.Contains(summary, "7.2")
	assert.Contains(summary, "comma-separated")
	assert.Contains(summary, "in room 0")
	assert.Contains(summary, "Sprites")
	assert.Contains(summary, "Variables")
}

func Test_Game_Summary_legacy(t *testing.T) {
	assert := assert.New(t)

	g := loadTestGame(t, "legacy.bitsy")

	summary := g.Summary(80)

	assert.Contains(summary, "1.0 (assumed)")
	assert.Contains(summary, "contiguous")
}

func Test_Game_ListRooms(t *testing.T) {
	assert := assert.New(t)

	g := loadTestGame(t, "default.bitsy")

	listing := g.ListRooms(160)

	assert.Contains(listing, "ROOM")
	assert.Contains(listing, "PALETTE")
	assert.Contains(listing, "example room")
}

func Test_DiagnosticsTable(t *testing.T) {
	assert := assert.New(t)

	diags := []error{
		bitsyerrors.New(bitsyerrors.KindPosition, "bad"),
		bitsyerrors.Missing(bitsyerrors.NotFoundAvatar),
	}

	table := DiagnosticsTable(diags, 80)

	assert.Contains(table, "Problems")
	assert.Contains(table, "1. Position")
	assert.Contains(table, "position error: bad")
	assert.Contains(table, "2. Game")
	assert.Contains(table, "avatar not found")
}

func Test_DiagnosticsTable_kindLabel(t *testing.T) {
	assert := assert.New(t)

	table := DiagnosticsTable([]error{bitsyerrors.New(bitsyerrors.KindPalette, "odd")}, 80)

	assert.Contains(table, "1. Palette")
	assert.Contains(table, "palette error: odd")
}

func Test_DiagnosticsTable_longProblemKeepsItsWords(t *testing.T) {
	assert := assert.New(t)

	msg := "exit error: transition token is not one of fade_w, fade_b, wave, tunnel, slide_u, slide_d, slide_l or slide_r"

	table := DiagnosticsTable([]error{errors.New(msg)}, 60)

	for _, word := range strings.Fields(msg) {
		assert.Contains(table, word)
	}
	for _, line := range strings.Split(table, "\n") {
		assert.LessOrEqual(len(line), 60)
	}
}
