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

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"d7y.io/popularity/internal/config"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)
	cfg := &config.MetricsConfig{
		Addr: "localhost:8000",
	}
	server := New(cfg)
	assert.Equal(cfg.Addr, server.Addr)

	mux, ok := server.Handler.(*http.ServeMux)
	if !ok {
		t.Fatalf("expected server.Handler to be a *http.ServeMux, but got %T", server.Handler)
	}

	OperationCount.WithLabelValues(IncreaseOperation).Inc()
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	assert.True(strings.Contains(body, "popularity_freqtrack_operation_total"))
	assert.True(strings.Contains(body, "popularity_freqtrack_version"))
}
