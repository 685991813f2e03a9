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

// Package lookups provides opaque membership predicates over the closed
// code sets (currencies, territories, societies, languages, dialects)
// that CWR field validation cross-checks against. The full tables are
// maintained by the societies themselves and run into the thousands of
// rows; what is embedded here is a representative subset sufficient to
// exercise the validation paths that consult them. A code absent from a
// table is treated as "unrecognized", not "malformed": callers report a
// Warning (an Info for society codes) rather than rejecting the record
// outright.
package lookups
