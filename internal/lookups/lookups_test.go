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

import "testing"

func TestIsValidCurrency(t *testing.T) {
	if !IsValidCurrency("USD") {
		t.Fatalf("expected USD to be a known currency")
	}
	if IsValidCurrency("XXX") {
		t.Fatalf("expected XXX to be unknown")
	}
}

func TestDescribeCurrency(t *testing.T) {
	name, ok := DescribeCurrency("EUR")
	if !ok || name != "Euro" {
		t.Fatalf("expected EUR to describe as Euro, got %q, %v", name, ok)
	}
	if _, ok := DescribeCurrency("ZZZ"); ok {
		t.Fatalf("expected ZZZ to be undescribed")
	}
}

func TestIsValidTerritory(t *testing.T) {
	if !IsValidTerritory("2136") {
		t.Fatalf("expected 2136 (World) to be a known TIS code")
	}
	if IsValidTerritory("9999") {
		t.Fatalf("expected 9999 to be unknown")
	}
}

func TestIsValidSociety(t *testing.T) {
	if !IsValidSociety("010") {
		t.Fatalf("expected 010 (ASCAP) to be a known society code")
	}
	if IsValidSociety("999") {
		t.Fatalf("expected 999 to be unknown")
	}
	if name, ok := DescribeSociety("021"); !ok || name != "BMI" {
		t.Fatalf("expected 021 to describe as BMI, got %q, %v", name, ok)
	}
}

func TestIsValidLanguageAndDialect(t *testing.T) {
	if !IsValidLanguage("EN") {
		t.Fatalf("expected EN to be a known language code")
	}
	if IsValidLanguage("ZZ") {
		t.Fatalf("expected ZZ to be unknown")
	}
	if !IsValidDialect("ENG") {
		t.Fatalf("expected ENG to be a known dialect code")
	}
	if IsValidDialect("ZZZ") {
		t.Fatalf("expected ZZZ to be an unknown dialect code")
	}
}
