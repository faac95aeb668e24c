package logging

import (
	"testing"

	"github.com/gurkankaymak/hocon"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutLogDoc(t *testing.T) {
	conf, err := hocon.ParseString(`
log { level = debug }
ld { enabled = false }
`)
	require.NoError(t, err)

	logger, closer := New(conf)
	require.NotNil(t, logger)
	assert.NoError(t, closer.Close())

	l, ok := logger.(*logrus.Logger)
	require.True(t, ok)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, parseLevel("warn"))
	assert.Equal(t, logrus.InfoLevel, parseLevel("loud"))
}
