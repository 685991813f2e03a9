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

func buildLine(width int, fields map[int]string) string {
	b := []byte(strings.Repeat(" ", width))
	for offset, val := range fields {
		copy(b[offset:], val)
	}
	return string(b)
}

func TestParseRecordAGRRoundtrip(t *testing.T) {
	line := buildLine(121, map[int]string{
		0:   "AGR",
		3:   "00000001",
		11:  "00000000",
		19:  "SUB00000000001",
		47:  "OS",
		49:  "20200101",
		57:  "20300101",
		99:  "00001",
		104: "S",
		105: "N",
		106: "Y",
	})

	rec, warnings := parseRecord(schemaAGR, "AGR", line, V21)
	for _, w := range warnings {
		if w.Level == Critical {
			t.Fatalf("unexpected critical warning: %v", w)
		}
	}
	if rec.CanonicalType() != "AGR" {
		t.Fatalf("expected canonical type AGR, got %s", rec.CanonicalType())
	}
	if rec.Text("submitter_agreement_number") != "SUB00000000001" {
		t.Fatalf("unexpected submitter_agreement_number: %q", rec.Text("submitter_agreement_number"))
	}
	if d := rec.Date("agreement_start_date"); d == nil || d.String() != "2020-01-01" {
		t.Fatalf("unexpected agreement_start_date: %v", d)
	}

	got := rec.Serialize(V21, CharsetASCII)
	if string(got) != line {
		t.Fatalf("roundtrip mismatch:\n want %q\n got  %q", line, got)
	}
}

func TestParseRecordAGREndBeforeStartWarns(t *testing.T) {
	line := buildLine(121, map[int]string{
		0:  "AGR",
		3:  "00000001",
		11: "00000000",
		19: "SUB00000000002",
		47: "OS",
		49: "20200101",
		57: "20100101",
		99: "00001",
	})
	_, warnings := parseRecord(schemaAGR, "AGR", line, V21)
	var found *Warning
	for i, w := range warnings {
		if w.FieldName == "agreement_end_date" {
			found = &warnings[i]
		}
	}
	if found == nil {
		t.Fatalf("expected agreement_end_date warning for end before start, got %v", warnings)
	}
	if found.Level != Critical {
		t.Fatalf("expected agreement_end_date warning to be Critical, got %v", found.Level)
	}
}

func TestParseRecordAGRPriorRoyaltyDesignatedRequiresStartDate(t *testing.T) {
	line := buildLine(121, map[int]string{
		0:  "AGR",
		3:  "00000001",
		11: "00000000",
		19: "SUB00000000003",
		47: "OS",
		49: "20200101",
		73: "D",
		99: "00001",
	})
	_, warnings := parseRecord(schemaAGR, "AGR", line, V21)
	var found *Warning
	for i, w := range warnings {
		if w.FieldName == "prior_royalty_start_date" {
			found = &warnings[i]
		}
	}
	if found == nil {
		t.Fatalf("expected prior_royalty_start_date warning when status is 'D', got %v", warnings)
	}
	if found.Level != Critical {
		t.Fatalf("expected prior_royalty_start_date warning to be Critical, got %v", found.Level)
	}
}

func TestParseRecordIPASharePresentNoSocietyWarns(t *testing.T) {
	line := buildLine(153, map[int]string{
		0:   "IPA",
		3:   "00000001",
		11:  "00000001",
		19:  "AC",
		45:  "123456789",
		54:  "SMITH",
		132: "05000",
	})
	_, warnings := parseRecord(schemaIPA, "IPA", line, V21)
	found := false
	for _, w := range warnings {
		if w.FieldName == "pr_affiliation_society" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected pr_affiliation_society warning, got %v", warnings)
	}
}

func TestParseRecordIPAAcquirerNoSharesWarns(t *testing.T) {
	line := buildLine(153, map[int]string{
		0:  "IPA",
		3:  "00000001",
		11: "00000001",
		19: "AC",
		45: "123456789",
		54: "SMITH",
	})
	_, warnings := parseRecord(schemaIPA, "IPA", line, V21)
	found := false
	for _, w := range warnings {
		if w.FieldName == "agreement_role_code" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected agreement_role_code warning for acquirer with no shares, got %v", warnings)
	}
}

func TestParseRecordNWRModVersionRequiresMusicArrangementCritical(t *testing.T) {
	line := buildLine(260, map[int]string{
		0:   "NWR",
		3:   "00000001",
		11:  "00000001",
		19:  "TEST SONG",
		126: "POP",
		142: "MOD",
	})
	_, warnings := parseRecord(schemaNWR, "NWR", line, V21)
	var found *Warning
	for i, w := range warnings {
		if w.FieldName == "music_arrangement" {
			found = &warnings[i]
		}
	}
	if found == nil {
		t.Fatalf("expected music_arrangement warning for version type MOD with no arrangement code, got %v", warnings)
	}
	if found.Level != Critical {
		t.Fatalf("expected music_arrangement warning to be Critical, got %v", found.Level)
	}
}

func TestParseRecordTERInclusionExclusion(t *testing.T) {
	line := buildLine(24, map[int]string{
		0:  "TER",
		3:  "00000001",
		11: "00000001",
		19: "I",
		20: "2136",
	})
	rec, warnings := parseRecord(schemaTER, "TER", line, V21)
	for _, w := range warnings {
		if w.Level == Critical {
			t.Fatalf("unexpected critical warning for known TIS code: %v", w)
		}
	}
	if rec.Text("inclusion_exclusion_indicator") != "I" {
		t.Fatalf("expected inclusion indicator I, got %q", rec.Text("inclusion_exclusion_indicator"))
	}
}

func TestFieldDefAppliesToVersion(t *testing.T) {
	f := FieldDef{Name: "x", MinVersion: V21}
	if f.appliesTo(V20) {
		t.Fatalf("expected V21-gated field to not apply at V20")
	}
	if !f.appliesTo(V21) {
		t.Fatalf("expected V21-gated field to apply at V21")
	}
	if !f.appliesTo(V22) {
		t.Fatalf("expected V21-gated field to apply at V22")
	}
}

func TestSerializeOmitsFieldsBelowMinVersion(t *testing.T) {
	line := buildLine(121, map[int]string{
		0:   "AGR",
		3:   "00000001",
		11:  "00000000",
		19:  "SUB00000000003",
		47:  "OS",
		49:  "20200101",
		99:  "00001",
		107: "SOCAGR0000001",
	})
	rec, _ := parseRecord(schemaAGR, "AGR", line, V21)
	gotV21 := rec.Serialize(V21, CharsetASCII)
	if !strings.Contains(string(gotV21), "SOCAGR0000001") {
		t.Fatalf("expected society_assigned_agreement_number present at V21, got %q", gotV21)
	}
	gotV20 := rec.Serialize(V20, CharsetASCII)
	if len(gotV20) != 107 {
		t.Fatalf("expected V20 serialization to stop before the V21-only field, got length %d", len(gotV20))
	}
}

func TestLookupSchemaResolvesAliases(t *testing.T) {
	tests := map[string]string{
		"NWR": "NWR",
		"REV": "NWR",
		"ISW": "NWR",
		"EXC": "NWR",
		"OPU": "SPU",
		"OPT": "SPT",
		"OWR": "SWR",
		"OWT": "SWT",
		"NCT": "NET",
		"NVT": "NET",
	}
	for code, want := range tests {
		s, ok := LookupSchema(code)
		if !ok {
			t.Fatalf("expected %s to resolve", code)
		}
		if s.CanonicalType != want {
			t.Errorf("LookupSchema(%s).CanonicalType = %s, want %s", code, s.CanonicalType, want)
		}
	}
}

func TestIsKnownRecordTypeRejectsUnknown(t *testing.T) {
	if IsKnownRecordType("ZZZ") {
		t.Fatalf("expected ZZZ to be unknown")
	}
	if !IsKnownRecordType("HDR") {
		t.Fatalf("expected HDR to be known")
	}
}
