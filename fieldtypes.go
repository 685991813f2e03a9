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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cdacos/allegro-cwr/internal/lookups"
)

// CwrDate is a calendar date parsed from an 8-byte YYYYMMDD field. A nil
// *CwrDate represents the field's absent value (all spaces, or the
// "00000000" sentinel both CWR and this codec treat as "no date").
type CwrDate struct {
	t time.Time
}

func NewCwrDate(year, month, day int) *CwrDate {
	return &CwrDate{t: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d *CwrDate) Time() time.Time { return d.t }

func (d *CwrDate) String() string {
	if d == nil {
		return ""
	}
	return d.t.Format("2006-01-02")
}

// ClockTime is a time-of-day parsed from a 6-byte HHMMSS field. A nil
// *ClockTime represents the field's absent value.
type ClockTime struct {
	Hour, Minute, Second int
}

func (c *ClockTime) SecondsSinceMidnight() int {
	if c == nil {
		return 0
	}
	return c.Hour*3600 + c.Minute*60 + c.Second
}

func (c *ClockTime) String() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Flag is the tri-state Y/N/U (blank) indicator CWR uses throughout.
type Flag int

const (
	FlagUnknown Flag = iota
	FlagYes
	FlagNo
)

func (f Flag) String() string {
	switch f {
	case FlagYes:
		return "Y"
	case FlagNo:
		return "N"
	default:
		return "U"
	}
}

func allSpaces(s string) bool {
	return strings.TrimSpace(s) == ""
}

func allZeros(s string) bool {
	for _, r := range s {
		if r != '0' {
			return false
		}
	}
	return len(s) > 0
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padRightBytes(s string, width int) string {
	b := []byte(s)
	if len(b) >= width {
		return string(b[:width])
	}
	return s + strings.Repeat(" ", width-len(b))
}

// --- Text ---------------------------------------------------------------

func parseText(raw, name, title string) (interface{}, []Warning) {
	var warnings []Warning
	for i := 0; i < len(raw); i++ {
		if raw[i] > 127 {
			warnings = append(warnings, newWarning(name, title, raw, Critical,
				fmt.Sprintf("byte %d (0x%02x) exceeds ASCII range", i, raw[i])))
			break
		}
	}
	return strings.TrimSpace(raw), warnings
}

func writeText(v interface{}, width int) string {
	s, _ := v.(string)
	return padRight(s, width)
}

// --- Non-roman alphabet text ---------------------------------------------

func parseNonRoman(raw, name, title string) (interface{}, []Warning) {
	// Exact byte span preserved; no trimming, no ASCII validation.
	return raw, nil
}

func writeNonRoman(v interface{}, width int) string {
	s, _ := v.(string)
	return padRightBytes(s, width)
}

// --- Date -----------------------------------------------------------------

func parseDateGeneric(raw, name, title string, optional bool) (interface{}, []Warning) {
	trimmed := strings.TrimSpace(raw)
	if optional && (allSpaces(raw) || allZeros(trimmed)) {
		return (*CwrDate)(nil), nil
	}
	if len(trimmed) != 8 {
		return (*CwrDate)(nil), []Warning{newWarning(name, title, raw, Warn,
			fmt.Sprintf("date should be 8 characters YYYYMMDD, got %d", len(trimmed)))}
	}
	year, err1 := strconv.Atoi(trimmed[0:4])
	month, err2 := strconv.Atoi(trimmed[4:6])
	day, err3 := strconv.Atoi(trimmed[6:8])
	if err1 != nil || err2 != nil || err3 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return (*CwrDate)(nil), []Warning{newWarning(name, title, raw, Warn,
			fmt.Sprintf("invalid date format: %s", trimmed))}
	}
	return NewCwrDate(year, month, day), nil
}

func parseDate(raw, name, title string) (interface{}, []Warning) {
	return parseDateGeneric(raw, name, title, false)
}

func parseOptionalDate(raw, name, title string) (interface{}, []Warning) {
	return parseDateGeneric(raw, name, title, true)
}

func writeDate(v interface{}, width int) string {
	d, _ := v.(*CwrDate)
	if d == nil {
		return strings.Repeat(" ", width)
	}
	return padRight(d.t.Format("20060102"), width)
}

// --- Time-of-day / duration ------------------------------------------------

func parseClockGeneric(raw, name, title string, zeroIsAbsent bool) (interface{}, []Warning) {
	trimmed := strings.TrimSpace(raw)
	if allSpaces(raw) || (zeroIsAbsent && allZeros(trimmed)) {
		return (*ClockTime)(nil), nil
	}
	if len(trimmed) != 6 {
		return (*ClockTime)(nil), []Warning{newWarning(name, title, raw, Warn,
			fmt.Sprintf("time should be 6 characters HHMMSS, got %d", len(trimmed)))}
	}
	h, err1 := strconv.Atoi(trimmed[0:2])
	m, err2 := strconv.Atoi(trimmed[2:4])
	s, err3 := strconv.Atoi(trimmed[4:6])
	if err1 != nil || err2 != nil || err3 != nil || h > 23 || m > 59 || s > 59 {
		return (*ClockTime)(nil), []Warning{newWarning(name, title, raw, Warn,
			fmt.Sprintf("malformed time: %s", trimmed))}
	}
	return &ClockTime{Hour: h, Minute: m, Second: s}, nil
}

func parseTime(raw, name, title string) (interface{}, []Warning) {
	return parseClockGeneric(raw, name, title, false)
}

func parseDuration(raw, name, title string) (interface{}, []Warning) {
	return parseClockGeneric(raw, name, title, true)
}

func writeClock(v interface{}, width int) string {
	c, _ := v.(*ClockTime)
	if c == nil {
		return strings.Repeat("0", width)
	}
	return padRight(fmt.Sprintf("%02d%02d%02d", c.Hour, c.Minute, c.Second), width)
}

// --- YesNo / FlagYNU --------------------------------------------------------

func parseYesNo(raw, name, title string) (interface{}, []Warning) {
	switch strings.TrimSpace(raw) {
	case "Y":
		return true, nil
	case "N", "":
		return false, nil
	default:
		return false, []Warning{newWarning(name, title, raw, Warn, "expected Y or N")}
	}
}

func writeYesNo(v interface{}, width int) string {
	b, _ := v.(bool)
	if b {
		return padRight("Y", width)
	}
	return padRight("N", width)
}

func parseFlagYNU(raw, name, title string) (interface{}, []Warning) {
	switch strings.TrimSpace(raw) {
	case "Y":
		return FlagYes, nil
	case "N":
		return FlagNo, nil
	case "", "U":
		return FlagUnknown, nil
	default:
		return FlagUnknown, []Warning{newWarning(name, title, raw, Warn, "expected Y, N, U or blank")}
	}
}

func writeFlagYNU(v interface{}, width int) string {
	f, _ := v.(Flag)
	switch f {
	case FlagYes:
		return padRight("Y", width)
	case FlagNo:
		return padRight("N", width)
	default:
		return padRight("", width)
	}
}

// --- Ownership share (0-10000 = 0.00%-100.00%) -----------------------------

func parseOwnershipShareGeneric(raw, name, title string, optional bool) (interface{}, []Warning) {
	trimmed := strings.TrimSpace(raw)
	if optional && (allSpaces(raw) || allZeros(trimmed)) {
		return (*int)(nil), nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return (*int)(nil), []Warning{newWarning(name, title, raw, Warn, "ownership share is not numeric")}
	}
	var warnings []Warning
	if n > 10000 {
		warnings = append(warnings, newWarning(name, title, raw, Warn,
			fmt.Sprintf("ownership share %d exceeds maximum 10000 (100.00%%)", n)))
		n = 10000
	}
	if n < 0 {
		n = 0
	}
	return &n, warnings
}

func parseOwnershipShare(raw, name, title string) (interface{}, []Warning) {
	return parseOwnershipShareGeneric(raw, name, title, false)
}

func parseOptionalOwnershipShare(raw, name, title string) (interface{}, []Warning) {
	return parseOwnershipShareGeneric(raw, name, title, true)
}

func writeOwnershipShare(v interface{}, width int) string {
	p, _ := v.(*int)
	if p == nil {
		return strings.Repeat("0", width)
	}
	return fmt.Sprintf("%0*d", width, *p)
}

// SharePercentage renders a parsed ownership share as a human percentage.
func SharePercentage(p *int) float64 {
	if p == nil {
		return 0
	}
	return float64(*p) / 100
}

// --- Zero-padded counts ------------------------------------------------------

func parseCount(raw, name, title string) (interface{}, []Warning) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return 0, []Warning{newWarning(name, title, raw, Warn, "count field is not a non-negative integer")}
	}
	return n, nil
}

func parseOptionalCount(raw, name, title string) (interface{}, []Warning) {
	trimmed := strings.TrimSpace(raw)
	if allSpaces(raw) || allZeros(trimmed) {
		return (*int)(nil), nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return (*int)(nil), []Warning{newWarning(name, title, raw, Warn, "count field is not a non-negative integer")}
	}
	return &n, nil
}

func writeCount(v interface{}, width int) string {
	switch n := v.(type) {
	case int:
		return fmt.Sprintf("%0*d", width, n)
	case *int:
		if n == nil {
			return strings.Repeat("0", width)
		}
		return fmt.Sprintf("%0*d", width, *n)
	default:
		return strings.Repeat("0", width)
	}
}

// --- Lookup-backed codes -----------------------------------------------------

func parseCurrencyCode(raw, name, title string) (interface{}, []Warning) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if trimmed == "" {
		return "", nil
	}
	if !lookups.IsValidCurrency(trimmed) {
		return trimmed, []Warning{newWarning(name, title, raw, Warn,
			fmt.Sprintf("currency code %q is not in the ISO 4217 table", trimmed))}
	}
	return trimmed, nil
}

func writeCurrencyCode(v interface{}, width int) string {
	s, _ := v.(string)
	return padRight(s, width)
}

func parseTisCode(raw, name, title string) (interface{}, []Warning) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || allZeros(trimmed) {
		return "", nil
	}
	if !lookups.IsValidTerritory(trimmed) {
		return trimmed, []Warning{newWarning(name, title, raw, Warn,
			fmt.Sprintf("TIS territory code %q is not currently valid", trimmed))}
	}
	return trimmed, nil
}

func writeTisCode(v interface{}, width int) string {
	s, _ := v.(string)
	return padRight(s, width)
}

func parseSocietyCode(raw, name, title string) (interface{}, []Warning) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	if !lookups.IsValidSociety(trimmed) {
		return trimmed, []Warning{newWarning(name, title, raw, Info,
			fmt.Sprintf("society code %q is not recognized", trimmed))}
	}
	return trimmed, nil
}

func writeSocietyCode(v interface{}, width int) string {
	s, _ := v.(string)
	return padRight(s, width)
}

func parseLanguageCode(raw, name, title string) (interface{}, []Warning) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if trimmed == "" {
		return "", nil
	}
	if !lookups.IsValidLanguage(trimmed) {
		return trimmed, []Warning{newWarning(name, title, raw, Warn,
			fmt.Sprintf("language code %q is not a recognized ISO 639-1 code", trimmed))}
	}
	return trimmed, nil
}

func writeLanguageCode(v interface{}, width int) string {
	s, _ := v.(string)
	return padRight(s, width)
}

func parseLanguageDialect(raw, name, title string) (interface{}, []Warning) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if trimmed == "" {
		return "", nil
	}
	if !lookups.IsValidDialect(trimmed) {
		return trimmed, []Warning{newWarning(name, title, raw, Warn,
			fmt.Sprintf("language dialect %q is not a recognized ISO 639-2 code", trimmed))}
	}
	return trimmed, nil
}

func writeLanguageDialect(v interface{}, width int) string {
	s, _ := v.(string)
	return padRight(s, width)
}

func parseIpiNameNumber(raw, name, title string) (interface{}, []Warning) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) != 11 || !allDigits(trimmed) {
		return trimmed, []Warning{newWarning(name, title, raw, Warn, "IPI name number should be 11 digits")}
	}
	return trimmed, nil
}

func writeIpiNameNumber(v interface{}, width int) string {
	s, _ := v.(string)
	return padRight(s, width)
}

func parseIpiBaseNumber(raw, name, title string) (interface{}, []Warning) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) != 13 || !allAlnum(trimmed) {
		return trimmed, []Warning{newWarning(name, title, raw, Warn, "IPI base number should be 13 alphanumeric characters")}
	}
	return trimmed, nil
}

func writeIpiBaseNumber(v interface{}, width int) string {
	s, _ := v.(string)
	return padRight(s, width)
}

func parseSenderType(raw, name, title string) (interface{}, []Warning) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	switch trimmed {
	case "PB", "SO", "WR", "AA":
		return trimmed, nil
	}
	if len(trimmed) == 2 && allDigits(trimmed) {
		return trimmed, nil
	}
	return trimmed, []Warning{newWarning(name, title, raw, Critical,
		fmt.Sprintf("sender type %q must be PB, SO, WR, AA, or a 2-digit numeric prefix", trimmed))}
}

func writeSenderType(v interface{}, width int) string {
	s, _ := v.(string)
	return padRight(s, width)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allAlnum(s string) bool {
	for _, r := range s {
		if !(r >= '0' && r <= '9') && !(r >= 'A' && r <= 'Z') && !(r >= 'a' && r <= 'z') {
			return false
		}
	}
	return true
}
