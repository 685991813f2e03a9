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

// Package charset transcodes the non-roman-alphabet fields of a CWR
// record between UTF-8 and the legacy encodings the HDR.character_set
// subfield can declare. Field boundaries in a CWR line stay
// byte-addressed regardless of charset; this package is only consulted
// when a caller wants a non-roman field's value as readable UTF-8
// instead of the raw bytes the wire format carries.
package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Name mirrors the handful of character set labels a CWR HDR record
// declares.
type Name string

const (
	ASCII             Name = ""
	UTF8              Name = "UTF-8"
	Unicode           Name = "Unicode"
	TraditionalBig5   Name = "Traditional [Big5]"
	SimplifiedGB      Name = "Simplified [GB]"
)

func encodingFor(name Name) encoding.Encoding {
	switch name {
	case TraditionalBig5:
		return traditionalchinese.Big5
	case SimplifiedGB:
		return simplifiedchinese.HZGB2312
	default:
		return nil
	}
}

// Decode converts raw wire bytes in the given charset to UTF-8. ASCII
// and UTF-8 inputs pass through unchanged; Unicode (UTF-16) is not
// decoded here since CWR transmissions in that charset are handled at
// the stream-sniffing layer via their byte order mark instead.
func Decode(raw []byte, name Name) (string, error) {
	enc := encodingFor(name)
	if enc == nil {
		return string(raw), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode converts a UTF-8 string back to the given charset's bytes,
// for writing a non-roman field back out at its original width.
func Encode(s string, name Name) ([]byte, error) {
	enc := encodingFor(name)
	if enc == nil {
		return []byte(s), nil
	}
	return enc.NewEncoder().Bytes([]byte(s))
}
