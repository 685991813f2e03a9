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
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHDR(width int) string {
	fields := map[int]string{
		0:  "HDR",
		3:  "PB",
		5:  "000000123",
		14: "A MUSIC PUBLISHER",
		59: "01.10",
		64: "20210101",
		72: "120000",
		78: "20210101",
		86: "ASCII",
	}
	for offset := range fields {
		if offset >= width {
			delete(fields, offset)
		}
	}
	return buildLine(width, fields)
}

func TestStripBomVariants(t *testing.T) {
	tests := []struct {
		name string
		bom  []byte
	}{
		{"UTF-8", []byte{0xef, 0xbb, 0xbf}},
		{"UTF-16LE", []byte{0xff, 0xfe}},
		{"UTF-16BE", []byte{0xfe, 0xff}},
		{"UTF-32LE", []byte{0xff, 0xfe, 0x00, 0x00}},
		{"UTF-32BE", []byte{0x00, 0x00, 0xfe, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append(append([]byte{}, tt.bom...), []byte("HDR")...)
			name, rest := stripBom(input)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, []byte("HDR"), rest)
		})
	}
}

func TestStripBomNoMatch(t *testing.T) {
	name, rest := stripBom([]byte("HDR1"))
	assert.Empty(t, name)
	assert.Equal(t, []byte("HDR1"), rest)
}

func TestVersionFromFilename(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		want    CwrVersion
		wantOk  bool
	}{
		{"v21 plain", "CW210001_ABC.V21", V21, true},
		{"v21 zipped", "CW210001_ABC.V21.zip", V21, true},
		{"v22 uppercase ext", "CW220001_ABC.V22.ZIP", V22, true},
		{"v20", "CW200001_ABC.V20", V20, true},
		{"no pattern", "CW210001_ABC.cwr", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := versionFromFilename(tt.file)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestVersionFromHdr(t *testing.T) {
	hdr21 := sampleHDR(104)
	hdr21 = hdr21[:101] + "2.1" + hdr21[104:]
	v, ok := versionFromHdr(hdr21)
	require.True(t, ok)
	assert.Equal(t, V21, v)

	_, ok = versionFromHdr(sampleHDR(95))
	assert.False(t, ok, "short v2.0 header has no version subfield")
}

func TestVersionByLength(t *testing.T) {
	assert.Equal(t, V20, versionByLength(70))
	assert.Equal(t, V21, versionByLength(90))
	assert.Equal(t, V22, versionByLength(120))
}

func TestResolveVersionPrecedence(t *testing.T) {
	override := V22
	hdr21 := sampleHDR(104)
	hdr21 = hdr21[:101] + "2.1" + hdr21[104:]

	o := newStreamOptions(WithVersionHint(override), WithFilename("x.V20"))
	assert.Equal(t, V22, resolveVersion(o, hdr21), "explicit override beats everything")

	o = newStreamOptions(WithFilename("x.V20"))
	assert.Equal(t, V20, resolveVersion(o, hdr21), "filename beats the HDR subfield")

	o = newStreamOptions()
	assert.Equal(t, V21, resolveVersion(o, hdr21), "HDR subfield beats the length heuristic")

	o = newStreamOptions()
	assert.Equal(t, V20, resolveVersion(o, sampleHDR(70)), "falls through to length heuristic")
}

func TestOpenCwrStreamRejectsMissingHeader(t *testing.T) {
	_, err := OpenCwrStream(strings.NewReader("NWR00000001\r\n"))
	require.Error(t, err)
	var invalid *InvalidHeaderError
	assert.ErrorAs(t, err, &invalid)
}

func TestOpenCwrStreamRejectsNonAscii(t *testing.T) {
	line := sampleHDR(104)
	bad := []byte(line)
	bad[20] = 0xe9
	_, err := OpenCwrStream(strings.NewReader(string(bad) + "\r\n"))
	require.Error(t, err)
	var nonAscii *NonAsciiInputError
	assert.ErrorAs(t, err, &nonAscii)
}

func TestOpenCwrStreamStripsBomAndDetectsVersion(t *testing.T) {
	line := sampleHDR(104)
	line = line[:101] + "2.2" + line[104:]
	input := string([]byte{0xef, 0xbb, 0xbf}) + line + "\r\n"

	s, err := OpenCwrStream(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, V22, s.CachedHeaderInfo().Version)
}

func TestStreamNextParsesRecordsAndSkipsBlankLines(t *testing.T) {
	hdr := sampleHDR(104)
	body := hdr + "\r\n\r\n" + hdr + "\r\n"
	s, err := OpenCwrStream(strings.NewReader(body), WithVersionHint(V21))
	require.NoError(t, err)

	pr, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "HDR", pr.Record.RecordTypeCode())
	assert.Equal(t, 1, pr.Line)

	pr2, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, pr2.Line, "blank line consumed without advancing a ParsedRecord")

	_, err = s.Next()
	assert.Equal(t, io.EOF, err)
}

func TestStreamCapturesHeaderIdentityFallsBackToUuid(t *testing.T) {
	hdr := buildLine(104, map[int]string{
		0:  "HDR",
		3:  "PB",
		14: "A MUSIC PUBLISHER",
		64: "20210101",
		72: "120000",
		78: "20210101",
		86: "ASCII",
	})
	s, err := OpenCwrStream(strings.NewReader(hdr+"\r\n"), WithVersionHint(V21))
	require.NoError(t, err)
	_, err = s.Next()
	require.NoError(t, err)
	assert.NotEmpty(t, s.CachedHeaderInfo().FileIdentifier)
}

func TestStreamNextRejectsUnknownRecordType(t *testing.T) {
	hdr := sampleHDR(104)
	s, err := OpenCwrStream(strings.NewReader(hdr+"\r\n"), WithVersionHint(V21))
	require.NoError(t, err)
	_, err = s.Next()
	require.NoError(t, err)

	s2, err := OpenCwrStream(strings.NewReader(hdr + "\r\nZZZ00000001\r\n"), WithVersionHint(V21))
	require.NoError(t, err)
	_, err = s2.Next()
	require.NoError(t, err)
	_, err = s2.Next()
	require.Error(t, err)
	var bad *BadFormatError
	assert.ErrorAs(t, err, &bad)
}
