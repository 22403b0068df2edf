/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestInitFreqtrack(t *testing.T) {
	tests := []struct {
		name    string
		console bool
		verbose bool
		expect  func(t *testing.T, dir string)
	}{
		{
			name:    "console logger",
			console: true,
			expect: func(t *testing.T, dir string) {
				assert := assert.New(t)
				assert.NoDirExists(filepath.Join(dir, "freqtrack"))
				assert.False(IsDebug())
			},
		},
		{
			name:    "verbose console logger",
			console: true,
			verbose: true,
			expect: func(t *testing.T, dir string) {
				assert := assert.New(t)
				assert.True(IsDebug())
			},
		},
		{
			name:    "file logger",
			verbose: true,
			expect: func(t *testing.T, dir string) {
				assert := assert.New(t)
				WithSourceAndLine("stdin", 1).Infof("replayed %d operations", 1)
				ReplayLogger.Debugf("increase %s", "foo")
				assert.NoError(CoreLogger.Sync())
				assert.NoError(ReplayLogger.Sync())

				for _, name := range []string{CoreLogFileName, ReplayLogFileName} {
					info, err := os.Stat(filepath.Join(dir, "freqtrack", name))
					assert.NoError(err)
					assert.NotZero(info.Size())
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			assert.NoError(t, InitFreqtrack(tc.verbose, tc.console, dir))
			tc.expect(t, dir)
		})
	}

	assert.NoError(t, InitFreqtrack(false, true, ""))
}

func TestSetLevel(t *testing.T) {
	assert := assert.New(t)
	assert.NoError(InitFreqtrack(false, true, ""))
	assert.False(IsDebug())

	SetLevel(zapcore.DebugLevel)
	assert.True(IsDebug())
	assert.True(With("foo", "bar").IsDebug())

	SetLevel(zapcore.InfoLevel)
	assert.False(IsDebug())
}
