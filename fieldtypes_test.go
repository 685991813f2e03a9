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

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantNil bool
		wantStr string
	}{
		{"valid date", "20210315", false, "2021-03-15"},
		{"blank is invalid for required date", "        ", true, ""},
		{"malformed month", "20211315", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := parseDate(tt.raw, "f", "F")
			d, _ := v.(*CwrDate)
			if tt.wantNil && d != nil {
				t.Fatalf("expected nil date, got %v", d)
			}
			if !tt.wantNil && (d == nil || d.String() != tt.wantStr) {
				t.Fatalf("expected %s, got %v", tt.wantStr, d)
			}
		})
	}
}

func TestParseOptionalDateAbsent(t *testing.T) {
	for _, raw := range []string{"        ", "00000000"} {
		v, warnings := parseOptionalDate(raw, "f", "F")
		d, _ := v.(*CwrDate)
		if d != nil {
			t.Fatalf("expected absent date for %q, got %v", raw, d)
		}
		if len(warnings) != 0 {
			t.Fatalf("expected no warnings for absent optional date, got %v", warnings)
		}
	}
}

func TestParseOwnershipShareClampsOverflow(t *testing.T) {
	v, warnings := parseOwnershipShare("12000", "pr_share", "PR Share")
	p, _ := v.(*int)
	if p == nil || *p != 10000 {
		t.Fatalf("expected share clamped to 10000, got %v", p)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for overflow share, got %d", len(warnings))
	}
}

func TestParseOptionalOwnershipShareAbsent(t *testing.T) {
	v, warnings := parseOptionalOwnershipShare("00000", "mr_share", "MR Share")
	p, _ := v.(*int)
	if p != nil {
		t.Fatalf("expected nil for zero optional share, got %v", *p)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestWriteOwnershipShareRoundtrip(t *testing.T) {
	v, _ := parseOwnershipShare("05000", "s", "S")
	got := writeOwnershipShare(v, 5)
	if got != "05000" {
		t.Fatalf("expected 05000, got %q", got)
	}
}

func TestParseFlagYNU(t *testing.T) {
	tests := []struct {
		raw  string
		want Flag
	}{
		{"Y", FlagYes},
		{"N", FlagNo},
		{"", FlagUnknown},
		{"U", FlagUnknown},
	}
	for _, tt := range tests {
		v, warnings := parseFlagYNU(tt.raw, "f", "F")
		if v.(Flag) != tt.want {
			t.Errorf("parseFlagYNU(%q) = %v, want %v", tt.raw, v, tt.want)
		}
		if len(warnings) != 0 {
			t.Errorf("parseFlagYNU(%q) produced unexpected warnings: %v", tt.raw, warnings)
		}
	}
}

func TestParseTextRejectsNonAscii(t *testing.T) {
	raw := string([]byte{'A', 'B', 0xe9})
	_, warnings := parseText(raw, "f", "F")
	if len(warnings) != 1 || warnings[0].Level != Critical {
		t.Fatalf("expected a single critical warning for non-ASCII text, got %v", warnings)
	}
}

func TestWriteTextPadsAndTruncates(t *testing.T) {
	if got := writeText("abc", 5); got != "abc  " {
		t.Fatalf("expected padded 'abc  ', got %q", got)
	}
	if got := writeText("abcdef", 3); got != "abc" {
		t.Fatalf("expected truncated 'abc', got %q", got)
	}
}

func TestParseCurrencyCodeUnknown(t *testing.T) {
	v, warnings := parseCurrencyCode("XYZ", "currency", "Currency")
	if v.(string) != "XYZ" {
		t.Fatalf("expected code preserved even when unrecognized, got %v", v)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for unrecognized currency, got %d", len(warnings))
	}
}
