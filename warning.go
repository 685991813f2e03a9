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

// WarningLevel is the severity of a Warning. Severity is a property of
// the CWR wire format and the rule that fired, not something a caller
// dials up or down.
type WarningLevel int

const (
	Info WarningLevel = iota
	Warn
	Critical
)

func (l WarningLevel) String() string {
	switch l {
	case Info:
		return "INFO"
	case Warn:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Warning is an immutable diagnostic produced while parsing a field or a
// record. Warnings are accumulated, never thrown: a field parser that
// encounters bad data substitutes a default value and records a Warning
// rather than failing.
type Warning struct {
	FieldName   string
	FieldTitle  string
	Source      string
	Level       WarningLevel
	Description string
}

func (w Warning) IsCritical() bool {
	return w.Level == Critical
}

func newWarning(name, title, source string, level WarningLevel, description string) Warning {
	return Warning{FieldName: name, FieldTitle: title, Source: source, Level: level, Description: description}
}

// AnyCritical reports whether any warning in the slice is Critical.
func AnyCritical(warnings []Warning) bool {
	for _, w := range warnings {
		if w.Level == Critical {
			return true
		}
	}
	return false
}
