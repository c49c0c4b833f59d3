package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logEntry は JSON ログ 1 行の形です
type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		message string
		err     error
	}{
		{
			name:    "エラーなしのログ",
			level:   "INFO",
			message: "テストメッセージ",
			err:     nil,
		},
		{
			name:    "エラーありのログ",
			level:   "ERROR",
			message: "エラーメッセージ",
			err:     errors.New("テストエラー"),
		},
		{
			name:    "小文字のレベル",
			level:   "warn",
			message: "警告メッセージ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			logger := NewJSONLogger(&buf)

			logger.Log(tt.level, tt.message, tt.err)

			var entry logEntry
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))

			assert.Equal(t, tt.message, entry.Message)
			assert.Equal(t, strings.ToUpper(tt.level), entry.Level)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), entry.Error)
			} else {
				assert.Empty(t, entry.Error)
			}

			// タイムスタンプが現在時刻に近いことを確認
			logTime, err := time.Parse(time.RFC3339, entry.Timestamp)
			require.NoError(t, err)
			assert.Less(t, time.Since(logTime), time.Minute)
		})
	}
}

func TestJSONLogger_UnknownLevel(t *testing.T) {
	var buf strings.Builder
	NewJSONLogger(&buf).Log("VERBOSE", "不明なレベル", nil)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "INFO", entry.Level)
}

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dropscope.log")

	logger, err := New(Config{Level: "WARN", Format: FormatConsole, Output: path})
	require.NoError(t, err)

	logger.Log("INFO", "出力されない", nil)
	logger.Log("ERROR", "出力される", errors.New("失敗"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "出力されない")
	assert.Contains(t, string(data), "出力される")
	assert.Contains(t, string(data), "失敗")

	_, err = New(Config{Format: "xml"})
	assert.Error(t, err)
}
