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

// territories holds a representative subset of CISAC TIS (Territory
// Information System) numeric codes, including the two pan-territory
// aggregates (World, World excl.) that appear constantly in SPU/SWR
// territorial share chains.
var territories = map[string]string{
	"2136": "World",
	"2137": "World excl. USA",
	"0840": "United States of America",
	"0124": "Canada",
	"0826": "United Kingdom",
	"0276": "Germany",
	"0250": "France",
	"0380": "Italy",
	"0724": "Spain",
	"0528": "Netherlands",
	"0036": "Australia",
	"0392": "Japan",
	"0076": "Brazil",
	"0484": "Mexico",
	"0752": "Sweden",
	"0578": "Norway",
	"0208": "Denmark",
	"0156": "China",
	"0356": "India",
	"0710": "South Africa",
}

func IsValidTerritory(code string) bool {
	_, ok := territories[code]
	return ok
}

func DescribeTerritory(code string) (string, bool) {
	name, ok := territories[code]
	return name, ok
}
