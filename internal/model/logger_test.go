package model

import "testing"

func TestDiscardLoggerWorksAsIntended(t *testing.T) {
	logger := DiscardLogger
	logger.Debug("foo")
	logger.Debugf("%s", "foo")
	logger.Info("foo")
	logger.Infof("%s", "foo")
	logger.Warn("foo")
	logger.Warnf("%s", "foo")
}

func TestValidLoggerOrDefault(t *testing.T) {
	t.Run("with nil logger", func(t *testing.T) {
		if ValidLoggerOrDefault(nil) != DiscardLogger {
			t.Fatal("expected DiscardLogger")
		}
	})

	t.Run("with non-nil logger", func(t *testing.T) {
		expected := &countingLogger{}
		if ValidLoggerOrDefault(expected) != expected {
			t.Fatal("expected the logger we passed")
		}
	})
}

type countingLogger struct {
	logDiscarder
}
