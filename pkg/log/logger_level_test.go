package log

import "testing"

func TestSetLevelFiltersLowerLevels(t *testing.T) {
	logger := NewLogger(LevelInfo)
	if logger.level != LevelInfo {
		t.Fatalf("expected initial level %v, got %v", LevelInfo, logger.level)
	}

	logger.SetLevel(LevelError)
	if logger.level != LevelError {
		t.Errorf("expected level %v after SetLevel, got %v", LevelError, logger.level)
	}
}

func TestLevelNames(t *testing.T) {
	for level, name := range map[LogLevel]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		LevelFatal: "FATAL",
	} {
		if levelNames[level] != name {
			t.Errorf("level %d: expected %q, got %q", level, name, levelNames[level])
		}
	}
}
