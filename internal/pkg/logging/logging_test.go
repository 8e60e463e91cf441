package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreStd(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	})
}

func TestSetup_JSONOutsideDevelopment(t *testing.T) {
	restoreStd(t)
	var buf bytes.Buffer
	Setup(&buf, "debug", false)

	logrus.WithField("sqlstate", "23503").Error("Erreur lors de l'ajout de la session")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "23503", entry["sqlstate"])
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestSetup_UnknownLevelFallsBackToInfo(t *testing.T) {
	restoreStd(t)
	var buf bytes.Buffer
	Setup(&buf, "chatty", true)

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.Contains(t, buf.String(), "unknown LOG_LEVEL")
}
