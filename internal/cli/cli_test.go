package cli

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_Start(t *testing.T) {
	assert := assert.New(t)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"bitsy-test", "--strict", "--log-level", "debug", "game.bitsy"}

	tools, args, done, code := Start("bitsy-test", 1, 1)

	assert.False(done)
	assert.Equal(ExitSuccess, code)
	assert.Equal([]string{"game.bitsy"}, args)
	if !assert.NotNil(tools) {
		return
	}
	assert.True(tools.Strict())
	assert.Equal(logrus.DebugLevel, tools.Logger().GetLevel())
}
