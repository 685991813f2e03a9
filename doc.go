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

/*
Package cwr is a library for parsing and generating CWR (Common Works
Registration) files: fixed-width, line-oriented ASCII records used by
music rights societies to exchange work registrations, agreements,
ownership shares and acknowledgements.

CWR

CWR files are a sequence of CRLF-terminated fixed-width lines. The first
line is a transmission header (HDR) and the last is a transmission
trailer (TRL); in between, group headers and trailers (GRH/GRT) bracket
transactions built from a primary record (a work registration or
agreement) followed by zero or more detail records.

Reading a CWR file

	s, err := cwr.OpenCwrStream(r, cwr.WithFilename(path))
	if err != nil {
		// header sniff failed: bad BOM, missing HDR, non-ASCII header
	}
	for {
		rec, err := s.Next()
		if err == io.EOF {
			break
		}
		// rec.Record.RecordTypeCode(), rec.Warnings, rec.Context
	}

Writing a record back out reuses the same fixed-width schema that parsed
it, so the codec never has parse and serialize paths that can drift
apart.
*/
package cwr
