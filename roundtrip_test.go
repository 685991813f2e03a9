/*
 * Copyright 2021 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cwr

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCwr(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.V21")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestClassifyDivergenceIdentical(t *testing.T) {
	_, diverged := classifyDivergence(1, "HDR abc", "HDR abc")
	assert.False(t, diverged)
}

func TestClassifyDivergenceTrailingSpacesAcceptable(t *testing.T) {
	d, diverged := classifyDivergence(1, "HDRshort", "HDRshort   ")
	require.True(t, diverged)
	assert.Equal(t, DivergenceLengthAcceptable, d.Kind)
}

func TestClassifyDivergenceLengthError(t *testing.T) {
	d, diverged := classifyDivergence(1, "HDRshort", "HDRdifferent")
	require.True(t, diverged)
	assert.Equal(t, DivergenceLengthError, d.Kind)
}

func TestClassifyDivergenceDateZeroPadding(t *testing.T) {
	d, diverged := classifyDivergence(1, "19000000", "19000000")
	assert.False(t, diverged)

	d, diverged = classifyDivergence(1, "        ", "00000000")
	require.True(t, diverged)
	assert.Equal(t, DivergenceDateZeroPadding, d.Kind)
}

func TestClassifyDivergenceOther(t *testing.T) {
	d, diverged := classifyDivergence(1, "ABCDEFGH", "ABCDEFGX")
	require.True(t, diverged)
	assert.Equal(t, DivergenceOther, d.Kind)
}

func TestValidateRoundtripCleanFile(t *testing.T) {
	hdr := sampleHDR(104)
	path := writeTempCwr(t, hdr+"\r\n")

	rpt, err := ValidateRoundtrip(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, rpt.LinesRead)
	assert.False(t, rpt.HasErrors())
}

func TestValidateRoundtripMissingFile(t *testing.T) {
	rpt, err := ValidateRoundtrip(context.Background(), filepath.Join(t.TempDir(), "missing.V21"))
	require.Error(t, err)
	assert.True(t, rpt.HasErrors())
	assert.NotNil(t, rpt.FailedToOpen)
}

func TestValidateRoundtripRespectsCancellation(t *testing.T) {
	hdr := sampleHDR(104)
	path := writeTempCwr(t, hdr+"\r\n"+hdr+"\r\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ValidateRoundtrip(ctx, path)
	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestValidateRoundtripFlagsCriticalWarnings(t *testing.T) {
	blankSender := buildLine(104, map[int]string{
		0:  "HDR",
		3:  "PB",
		64: "20210101",
		72: "120000",
		78: "20210101",
		86: "ASCII",
	})
	path := writeTempCwr(t, blankSender+"\r\n")

	rpt, err := ValidateRoundtrip(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, rpt.HasErrors())
	assert.True(t, AnyCritical(rpt.Warnings))
}

func TestValidateRoundtripTimeoutIsUsableByCaller(t *testing.T) {
	hdr := sampleHDR(104)
	path := writeTempCwr(t, hdr+"\r\n")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	rpt, err := ValidateRoundtrip(ctx, path)
	require.NoError(t, err)
	assert.False(t, rpt.HasErrors())
}
