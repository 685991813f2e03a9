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

package lookups

// societies holds a representative subset of CISAC society codes as they
// appear in SPU/SWR affiliation fields and the AGR submitter identity.
var societies = map[string]string{
	"010": "ASCAP",
	"021": "BMI",
	"034": "SACEM",
	"052": "GEMA",
	"044": "PRS for Music",
	"073": "SIAE",
	"079": "SGAE",
	"101": "JASRAC",
	"055": "SUISA",
	"023": "BUMA",
	"056": "SOCAN",
	"121": "APRA",
	"016": "SAMRO",
	"048": "SABAM",
	"097": "STIM",
	"090": "TONO",
	"089": "KODA",
}

func IsValidSociety(code string) bool {
	_, ok := societies[code]
	return ok
}

func DescribeSociety(code string) (string, bool) {
	name, ok := societies[code]
	return name, ok
}
