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

// MSG (Message) carries a diagnostic the recipient society attaches to a
// prior transaction, distinct from the Warning type this codec produces
// on its own parse: an MSG record is wire data, a Warning is a property
// of decoding it.
var schemaMSG = &Schema{
	CanonicalType: "MSG",
	Title:         "Message",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "MSG"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "message_type", Title: "Message Type", Offset: 19, Width: 1, Kind: KindEnum, Enum: MessageType},
		{Name: "message_record_type", Title: "Message Record Type", Offset: 20, Width: 3, Kind: KindText},
		{Name: "message_level", Title: "Message Level", Offset: 23, Width: 1, Kind: KindEnum, Enum: MessageLevel},
		{Name: "validation_number", Title: "Validation Number", Offset: 24, Width: 3, Kind: KindText},
		{Name: "message_text", Title: "Message Text", Offset: 27, Width: 150, Kind: KindText},
	},
}

// NPR (Performance Data) ties a performing artist to a work and, from
// v2.1, records the language and dialect the performance was in.
var schemaNPR = &Schema{
	CanonicalType: "NPR",
	Title:         "Performance Data",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "NPR"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "performing_artist_name", Title: "Performing Artist Name", Offset: 19, Width: 60, Kind: KindText},
		{Name: "performing_artist_first_name", Title: "Performing Artist First Name", Offset: 79, Width: 30, Kind: KindText},
		{Name: "performing_artist_ipi_name_number", Title: "Performing Artist IPI Name Number", Offset: 109, Width: 11, Kind: KindIpiNameNumber},
		{Name: "performing_artist_ipi_base_number", Title: "Performing Artist IPI Base Number", Offset: 120, Width: 13, Kind: KindIpiBaseNumber},
		{Name: "performance_language", Title: "Performance Language", Offset: 133, Width: 2, Kind: KindLanguageCode, MinVersion: V21},
		{Name: "performance_dialect", Title: "Performance Dialect", Offset: 135, Width: 3, Kind: KindLanguageDialect, MinVersion: V21},
	},
}

// NET/NCT/NVT (Non-Roman Alphabet Entire/Title for a Work) carry the
// non-roman shadow of an EWT or VER title depending on which alias a
// transaction used, but share one layout.
var schemaNET = &Schema{
	CanonicalType: "NET",
	Title:         "Non-Roman Alphabet Entire Work Title",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "NET"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "title", Title: "Title", Offset: 19, Width: 640, Kind: KindNonRoman, NonRoman: true},
		{Name: "language_code", Title: "Language Code", Offset: 659, Width: 2, Kind: KindLanguageCode},
	},
}

// NOW (Non-Roman Alphabet Other Writer Name) names a writer who appears
// elsewhere (EWT/VER/PER) in non-roman script.
var schemaNOW = &Schema{
	CanonicalType: "NOW",
	Title:         "Non-Roman Alphabet Other Writer Name",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "NOW"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "writer_last_name", Title: "Writer Last Name", Offset: 19, Width: 160, Kind: KindNonRoman, NonRoman: true},
		{Name: "writer_first_name", Title: "Writer First Name", Offset: 179, Width: 160, Kind: KindNonRoman, NonRoman: true},
		{Name: "writer_position", Title: "Writer Position", Offset: 339, Width: 1, Kind: KindOptionalCount},
		{Name: "language_code", Title: "Language Code", Offset: 340, Width: 2, Kind: KindLanguageCode},
	},
}

// ARI (Additional Related Information) attaches a society's free-text
// note to a work, agreement or territory in the enclosing transaction.
var schemaARI = &Schema{
	CanonicalType: "ARI",
	Title:         "Additional Related Information",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "ARI"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "society_num", Title: "Society Number", Offset: 19, Width: 3, Kind: KindSocietyCode},
		{Name: "work_num", Title: "Work Number", Offset: 22, Width: 14, Kind: KindText},
		{Name: "type_of_right", Title: "Type of Right", Offset: 36, Width: 3, Kind: KindText},
		{Name: "subject_code", Title: "Subject Code", Offset: 39, Width: 2, Kind: KindText},
		{Name: "note", Title: "Note", Offset: 41, Width: 160, Kind: KindText},
	},
}

// XRF (Work ID Cross Reference) maps this work's submitter-assigned
// number to an identifier another organisation uses for it.
var schemaXRF = &Schema{
	CanonicalType: "XRF",
	Title:         "Work ID Cross Reference",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "XRF"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "organisation_code", Title: "Organisation Code", Offset: 19, Width: 3, Kind: KindSocietyCode},
		{Name: "identifier", Title: "Identifier", Offset: 22, Width: 14, Kind: KindText},
		{Name: "identifier_type", Title: "Identifier Type", Offset: 36, Width: 1, Kind: KindText},
		{Name: "validity", Title: "Validity", Offset: 37, Width: 1, Kind: KindText},
	},
}
