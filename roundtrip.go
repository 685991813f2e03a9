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
	"fmt"
	"io"
	"os"
)

// DivergenceKind classifies a line where parse-then-serialize did not
// reproduce the original bytes.
type DivergenceKind int

const (
	// DivergenceLengthAcceptable is a length difference at the tail
	// only: either the original line was shorter than the schema's full
	// width for its version and the serializer added nothing but
	// spaces, which many submitted files are for fields that happened
	// to be blank at the tail, or the original carries extra trailing
	// bytes beyond the serialized line.
	DivergenceLengthAcceptable DivergenceKind = iota
	// DivergenceLengthError is any other length mismatch: the shorter
	// line is not a prefix of the longer one, or the serializer's extra
	// tail holds something other than spaces.
	DivergenceLengthError
	// DivergenceDateZeroPadding is an equal-length divergence confined
	// to 8-byte runs that read "00000000" on one side and eight spaces
	// on the other, e.g. an absent date that the input wrote as zeros
	// where this codec writes spaces.
	DivergenceDateZeroPadding
	// DivergenceOther is any byte difference not otherwise classified.
	DivergenceOther
)

func (k DivergenceKind) String() string {
	switch k {
	case DivergenceLengthAcceptable:
		return "LENGTH_MISMATCH_ACCEPTABLE"
	case DivergenceLengthError:
		return "LENGTH_MISMATCH_ERROR"
	case DivergenceDateZeroPadding:
		return "DATE_ZERO_PADDING"
	default:
		return "OTHER"
	}
}

// Divergence is one line where the serialized form did not match the
// original byte-for-byte.
type Divergence struct {
	Line     int
	Kind     DivergenceKind
	Original string
	Got      string
}

// ValidationReport is the result of running ValidateRoundtrip over a
// file: every parse Warning encountered plus every serialization
// Divergence, in line order.
type ValidationReport struct {
	Path         string
	LinesRead    int
	Warnings     []Warning
	Divergences  []Divergence
	FailedToOpen error
}

// HasErrors reports whether the report contains anything beyond
// length-acceptable and date zero-padding divergences and
// non-critical warnings.
func (rpt *ValidationReport) HasErrors() bool {
	if rpt.FailedToOpen != nil {
		return true
	}
	if AnyCritical(rpt.Warnings) {
		return true
	}
	for _, d := range rpt.Divergences {
		if d.Kind != DivergenceLengthAcceptable && d.Kind != DivergenceDateZeroPadding {
			return true
		}
	}
	return false
}

// ValidateRoundtrip parses path, re-serializes each record, and
// byte-diffs the result against the original line, classifying any
// mismatch. ctx is checked between lines so a caller can cancel a
// validation run over a very large file.
func ValidateRoundtrip(ctx context.Context, path string, opts ...StreamOption) (*ValidationReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return &ValidationReport{Path: path, FailedToOpen: err}, err
	}
	defer f.Close()

	opts = append([]StreamOption{WithFilename(path)}, opts...)
	s, err := OpenCwrStream(f, opts...)
	if err != nil {
		return &ValidationReport{Path: path, FailedToOpen: err}, err
	}

	rpt := &ValidationReport{Path: path}
	for {
		select {
		case <-ctx.Done():
			return rpt, ctx.Err()
		default:
		}

		pr, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rpt, err
		}
		rpt.LinesRead++
		rpt.Warnings = append(rpt.Warnings, pr.Warnings...)

		serialized := string(pr.Record.Serialize(s.ctx.Version, s.ctx.CharacterSet))
		if d, ok := classifyDivergence(pr.Line, pr.Raw, serialized); ok {
			rpt.Divergences = append(rpt.Divergences, d)
		}
	}
	return rpt, nil
}

func classifyDivergence(line int, original, got string) (Divergence, bool) {
	if original == got {
		return Divergence{}, false
	}
	if len(original) != len(got) {
		trimmedGot := got
		if len(got) > len(original) {
			trimmedGot = got[:len(original)]
		}
		if trimmedGot == original && isAllSpaces(got[len(original):]) {
			return Divergence{Line: line, Kind: DivergenceLengthAcceptable, Original: original, Got: got}, true
		}
		if len(original) > len(got) && original[:len(got)] == got {
			return Divergence{Line: line, Kind: DivergenceLengthAcceptable, Original: original, Got: got}, true
		}
		return Divergence{Line: line, Kind: DivergenceLengthError, Original: original, Got: got}, true
	}
	if isDateZeroPaddingDivergence(original, got) {
		return Divergence{Line: line, Kind: DivergenceDateZeroPadding, Original: original, Got: got}, true
	}
	return Divergence{Line: line, Kind: DivergenceOther, Original: original, Got: got}, true
}

func isAllSpaces(s string) bool {
	for _, r := range s {
		if r != ' ' {
			return false
		}
	}
	return true
}

// isDateZeroPaddingDivergence reports whether original and got differ
// only in 8-character runs where one side reads "00000000" and the
// other eight spaces, the ambiguity an absent date field can
// round-trip through: this codec writes spaces for an absent date, but
// some submitted files write zeros instead.
func isDateZeroPaddingDivergence(original, got string) bool {
	if len(original) != len(got) {
		return false
	}
	sawDifference := false
	for i := 0; i < len(original); {
		if original[i] == got[i] {
			i++
			continue
		}
		if i+8 > len(original) {
			return false
		}
		o, g := original[i:i+8], got[i:i+8]
		if !((o == "00000000" && g == "        ") || (o == "        " && g == "00000000")) {
			return false
		}
		sawDifference = true
		i += 8
	}
	return sawDifference
}

func (d Divergence) String() string {
	return fmt.Sprintf("line %d [%s]: %q != %q", d.Line, d.Kind, d.Original, d.Got)
}
