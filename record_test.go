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
	"strings"
	"testing"
)

func TestParsedRecordString(t *testing.T) {
	line := buildLine(24, map[int]string{
		0:  "TER",
		3:  "00000001",
		11: "00000001",
		19: "I",
		20: "2136",
	})
	rec, warnings := parseRecord(schemaTER, "TER", line, V21)
	pr := &ParsedRecord{Record: rec, Warnings: warnings, Line: 5, Raw: line}

	got := pr.String()
	if !strings.Contains(got, "line 5") || !strings.Contains(got, "TER") {
		t.Fatalf("unexpected ParsedRecord.String() output: %q", got)
	}
}

func TestRecordNonRomanTextPassthroughForAscii(t *testing.T) {
	line := buildLine(663, map[int]string{
		0:  "NAT",
		3:  "00000001",
		11: "00000001",
		19: "TEST TITLE",
	})
	rec, _ := parseRecord(schemaNAT, "NAT", line, V21)

	got, err := rec.NonRomanText("title", CharsetASCII)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "TEST TITLE") {
		t.Fatalf("expected decoded text to start with TEST TITLE, got %q", got)
	}
}

func TestRecordAliasPreservesTypeCodeDistinctFromCanonical(t *testing.T) {
	line := buildLine(263, map[int]string{
		0: "REV",
		3: "00000001",
	})
	rec, _ := parseRecord(schemaNWR, "REV", line, V21)
	if rec.RecordTypeCode() != "REV" {
		t.Fatalf("expected RecordTypeCode to preserve alias REV, got %s", rec.RecordTypeCode())
	}
	if rec.CanonicalType() != "NWR" {
		t.Fatalf("expected CanonicalType to resolve to NWR, got %s", rec.CanonicalType())
	}
}
