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

package charset

import "testing"

func TestDecodePassthroughForAsciiAndUtf8(t *testing.T) {
	for _, name := range []Name{ASCII, UTF8} {
		got, err := Decode([]byte("hello"), name)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", name, err)
		}
		if got != "hello" {
			t.Fatalf("expected passthrough, got %q", got)
		}
	}
}

func TestEncodeDecodeBig5Roundtrip(t *testing.T) {
	original := "你好"
	encoded, err := Encode(original, TraditionalBig5)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	decoded, err := Decode(encoded, TraditionalBig5)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if decoded != original {
		t.Fatalf("expected roundtrip to preserve %q, got %q", original, decoded)
	}
}

func TestEncodeDecodeSimplifiedGBRoundtrip(t *testing.T) {
	original := "你好"
	encoded, err := Encode(original, SimplifiedGB)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	decoded, err := Decode(encoded, SimplifiedGB)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if decoded != original {
		t.Fatalf("expected roundtrip to preserve %q, got %q", original, decoded)
	}
}
