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

// NWR (New Work Registration) is the primary transaction record; REV
// (revision), ISW (ISWC request) and EXC (work exchange) are aliases
// dispatched to the same schema and differ only in how the registry
// built their transaction, not in their field layout.
var schemaNWR = &Schema{
	CanonicalType: "NWR",
	Title:         "New Work Registration",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "NWR"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "work_title", Title: "Work Title", Offset: 19, Width: 60, Kind: KindText},
		{Name: "language_code", Title: "Language Code", Offset: 79, Width: 2, Kind: KindLanguageCode},
		{Name: "submitter_work_num", Title: "Submitter Work Number", Offset: 81, Width: 14, Kind: KindText},
		{Name: "iswc", Title: "ISWC", Offset: 95, Width: 11, Kind: KindText},
		{Name: "copyright_date", Title: "Copyright Date", Offset: 106, Width: 8, Kind: KindOptionalDate},
		{Name: "copyright_number", Title: "Copyright Number", Offset: 114, Width: 12, Kind: KindText},
		{Name: "musical_work_distribution_category", Title: "Musical Work Distribution Category", Offset: 126, Width: 3, Kind: KindEnum, Enum: MusicalWorkDistributionCategory},
		{Name: "duration", Title: "Duration", Offset: 129, Width: 6, Kind: KindDuration},
		{Name: "recorded_indicator", Title: "Recorded Indicator", Offset: 135, Width: 1, Kind: KindFlagYNU},
		{Name: "text_music_relationship", Title: "Text Music Relationship", Offset: 136, Width: 3, Kind: KindEnum, Enum: TextMusicRelationship},
		{Name: "composite_type", Title: "Composite Type", Offset: 139, Width: 3, Kind: KindEnum, Enum: CompositeType},
		{Name: "version_type", Title: "Version Type", Offset: 142, Width: 3, Kind: KindEnum, Enum: VersionType},
		{Name: "excerpt_type", Title: "Excerpt Type", Offset: 145, Width: 3, Kind: KindEnum, Enum: ExcerptType},
		{Name: "music_arrangement", Title: "Music Arrangement", Offset: 148, Width: 3, Kind: KindEnum, Enum: MusicArrangement},
		{Name: "lyric_adaptation", Title: "Lyric Adaptation", Offset: 151, Width: 3, Kind: KindEnum, Enum: LyricAdaptation},
		{Name: "contact_name", Title: "Contact Name", Offset: 154, Width: 30, Kind: KindText},
		{Name: "contact_id", Title: "Contact ID", Offset: 184, Width: 10, Kind: KindText},
		{Name: "cwr_work_type", Title: "CWR Work Type", Offset: 194, Width: 2, Kind: KindText},
		{Name: "grand_rights_ind", Title: "Grand Rights Indicator", Offset: 196, Width: 1, Kind: KindYesNo},
		{Name: "composite_component_count", Title: "Composite Component Count", Offset: 197, Width: 3, Kind: KindOptionalCount},
		{Name: "date_of_publication_of_printed_edition", Title: "Date of Publication of Printed Edition", Offset: 200, Width: 8, Kind: KindOptionalDate},
		{Name: "exceptional_clause", Title: "Exceptional Clause", Offset: 208, Width: 1, Kind: KindYesNo},
		{Name: "opus_number", Title: "Opus Number", Offset: 209, Width: 25, Kind: KindText},
		{Name: "catalogue_number", Title: "Catalogue Number", Offset: 234, Width: 25, Kind: KindText},
		{Name: "priority_flag", Title: "Priority Flag", Offset: 259, Width: 1, Kind: KindFlagYNU, MinVersion: V21},
	},
	Validate: func(r *Record, version CwrVersion) []Warning {
		var warnings []Warning
		if r.Text("work_title") == "" {
			warnings = append(warnings, newWarning("work_title", "Work Title", "", Critical, "work title is required"))
		}
		if r.Text("version_type") == "MOD" && r.Text("music_arrangement") == "" {
			warnings = append(warnings, newWarning("music_arrangement", "Music Arrangement", "", Critical,
				"Music Arrangement is required when Version Type is 'MOD'"))
		}
		if count := r.IntPtr("composite_component_count"); count != nil && *count > 0 && r.Text("composite_type") == "" {
			warnings = append(warnings, newWarning("composite_type", "Composite Type", "", Warn,
				"composite component count is set but composite type is blank"))
		}
		if iswc := r.Text("iswc"); iswc != "" && len(iswc) != 11 {
			warnings = append(warnings, newWarning("iswc", "ISWC", iswc, Warn,
				"ISWC should be 11 characters (T plus 10 digits)"))
		}
		return warnings
	},
}

var schemaVER = &Schema{
	CanonicalType: "VER",
	Title:         "Original Work Title for Versions",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "VER"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "original_work_title", Title: "Original Work Title", Offset: 19, Width: 60, Kind: KindText},
		{Name: "iswc_of_original_work", Title: "ISWC of Original Work", Offset: 79, Width: 11, Kind: KindText},
		{Name: "language_code", Title: "Language Code", Offset: 90, Width: 2, Kind: KindLanguageCode},
		{Name: "writer_1_last_name", Title: "Writer 1 Last Name", Offset: 92, Width: 45, Kind: KindText},
		{Name: "writer_1_first_name", Title: "Writer 1 First Name", Offset: 137, Width: 30, Kind: KindText},
		{Name: "source", Title: "Source", Offset: 167, Width: 60, Kind: KindText},
		{Name: "writer_1_ipi_name_number", Title: "Writer 1 IPI Name Number", Offset: 227, Width: 11, Kind: KindIpiNameNumber},
		{Name: "writer_1_ipi_base_number", Title: "Writer 1 IPI Base Number", Offset: 238, Width: 13, Kind: KindIpiBaseNumber},
		{Name: "writer_2_last_name", Title: "Writer 2 Last Name", Offset: 251, Width: 45, Kind: KindText},
		{Name: "writer_2_first_name", Title: "Writer 2 First Name", Offset: 296, Width: 30, Kind: KindText},
		{Name: "writer_2_ipi_name_number", Title: "Writer 2 IPI Name Number", Offset: 326, Width: 11, Kind: KindIpiNameNumber},
		{Name: "writer_2_ipi_base_number", Title: "Writer 2 IPI Base Number", Offset: 337, Width: 13, Kind: KindIpiBaseNumber},
		{Name: "submitter_work_num", Title: "Submitter Work Number", Offset: 350, Width: 14, Kind: KindText},
	},
	Validate: func(r *Record, version CwrVersion) []Warning {
		var warnings []Warning
		if r.Text("original_work_title") == "" {
			warnings = append(warnings, newWarning("original_work_title", "Original Work Title", "", Critical,
				"original work title is required on a VER record"))
		}
		if iswc := r.Text("iswc_of_original_work"); iswc != "" && len(iswc) != 11 {
			warnings = append(warnings, newWarning("iswc_of_original_work", "ISWC of Original Work", iswc, Warn,
				"ISWC should be 11 characters"))
		}
		if r.Text("writer_1_first_name") != "" && r.Text("writer_1_last_name") == "" {
			warnings = append(warnings, newWarning("writer_1_last_name", "Writer 1 Last Name", "", Warn,
				"writer 1 first name given without a last name"))
		}
		if r.Text("writer_2_first_name") != "" && r.Text("writer_2_last_name") == "" {
			warnings = append(warnings, newWarning("writer_2_last_name", "Writer 2 Last Name", "", Warn,
				"writer 2 first name given without a last name"))
		}
		return warnings
	},
}

// EWT (Entire Work Title for Excerpts) shares VER's field shape: both
// link a work back to a parent title, one for excerpts and one for
// versions.
var schemaEWT = &Schema{
	CanonicalType: "EWT",
	Title:         "Entire Work Title for Excerpts",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "EWT"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "entire_work_title", Title: "Entire Work Title", Offset: 19, Width: 60, Kind: KindText},
		{Name: "iswc_of_entire_work", Title: "ISWC of Entire Work", Offset: 79, Width: 11, Kind: KindText},
		{Name: "language_code", Title: "Language Code", Offset: 90, Width: 2, Kind: KindLanguageCode},
		{Name: "writer_1_last_name", Title: "Writer 1 Last Name", Offset: 92, Width: 45, Kind: KindText},
		{Name: "writer_1_first_name", Title: "Writer 1 First Name", Offset: 137, Width: 30, Kind: KindText},
		{Name: "source", Title: "Source", Offset: 167, Width: 60, Kind: KindText},
		{Name: "writer_1_ipi_name_number", Title: "Writer 1 IPI Name Number", Offset: 227, Width: 11, Kind: KindIpiNameNumber},
		{Name: "writer_1_ipi_base_number", Title: "Writer 1 IPI Base Number", Offset: 238, Width: 13, Kind: KindIpiBaseNumber},
		{Name: "writer_2_last_name", Title: "Writer 2 Last Name", Offset: 251, Width: 45, Kind: KindText},
		{Name: "writer_2_first_name", Title: "Writer 2 First Name", Offset: 296, Width: 30, Kind: KindText},
		{Name: "writer_2_ipi_name_number", Title: "Writer 2 IPI Name Number", Offset: 326, Width: 11, Kind: KindIpiNameNumber},
		{Name: "writer_2_ipi_base_number", Title: "Writer 2 IPI Base Number", Offset: 337, Width: 13, Kind: KindIpiBaseNumber},
		{Name: "submitter_work_num", Title: "Submitter Work Number", Offset: 350, Width: 14, Kind: KindText},
	},
}

var schemaPER = &Schema{
	CanonicalType: "PER",
	Title:         "Performing Artist",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "PER"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "performing_artist_last_name", Title: "Performing Artist Last Name", Offset: 19, Width: 45, Kind: KindText},
		{Name: "performing_artist_first_name", Title: "Performing Artist First Name", Offset: 64, Width: 30, Kind: KindText},
		{Name: "performing_artist_ipi_name_number", Title: "Performing Artist IPI Name Number", Offset: 94, Width: 11, Kind: KindIpiNameNumber},
		{Name: "performing_artist_ipi_base_number", Title: "Performing Artist IPI Base Number", Offset: 105, Width: 13, Kind: KindIpiBaseNumber},
	},
}

var schemaORN = &Schema{
	CanonicalType: "ORN",
	Title:         "Work Origin",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "ORN"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "intended_purpose", Title: "Intended Purpose", Offset: 19, Width: 3, Kind: KindEnum, Enum: IntendedPurpose},
		{Name: "production_title", Title: "Production Title", Offset: 22, Width: 60, Kind: KindText},
		{Name: "cd_identifier", Title: "CD Identifier", Offset: 82, Width: 15, Kind: KindText},
		{Name: "cut_number", Title: "Cut Number", Offset: 97, Width: 4, Kind: KindOptionalCount},
		{Name: "library", Title: "Library", Offset: 101, Width: 60, Kind: KindText, MinVersion: V21},
		{Name: "bltvr", Title: "BLTVR", Offset: 161, Width: 1, Kind: KindText, MinVersion: V21},
		{Name: "visan", Title: "V-ISAN (pre-2.2)", Offset: 165, Width: 12, Kind: KindText, MinVersion: V21},
		{Name: "production_num", Title: "Production Number", Offset: 177, Width: 12, Kind: KindText, MinVersion: V21},
		{Name: "episode_title", Title: "Episode Title", Offset: 189, Width: 60, Kind: KindText, MinVersion: V21},
		{Name: "episode_number", Title: "Episode Number", Offset: 249, Width: 20, Kind: KindText, MinVersion: V21},
		{Name: "year_of_production", Title: "Year of Production", Offset: 269, Width: 4, Kind: KindText, MinVersion: V21},
		{Name: "avi_society_code", Title: "AVI Society Code", Offset: 273, Width: 3, Kind: KindSocietyCode, MinVersion: V21},
		{Name: "audio_visual_number", Title: "Audio-Visual Number", Offset: 276, Width: 15, Kind: KindText, MinVersion: V21},
		{Name: "v_isan_isan", Title: "V-ISAN", Offset: 301, Width: 24, Kind: KindText, MinVersion: V22},
		{Name: "eidr", Title: "EIDR", Offset: 325, Width: 23, Kind: KindText, MinVersion: V22},
	},
	Validate: func(r *Record, version CwrVersion) []Warning {
		if r.Text("intended_purpose") == "LIB" && r.Text("cd_identifier") == "" {
			return []Warning{newWarning("cd_identifier", "CD Identifier", "", Warn,
				"library intended purpose usually carries a CD identifier")}
		}
		return nil
	},
}

var schemaREC = &Schema{
	CanonicalType: "REC",
	Title:         "Recording Detail",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "REC"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "first_release_date", Title: "First Release Date", Offset: 19, Width: 8, Kind: KindOptionalDate},
		{Name: "first_release_duration", Title: "First Release Duration", Offset: 27, Width: 6, Kind: KindDuration},
		{Name: "first_album_title", Title: "First Album Title", Offset: 33, Width: 60, Kind: KindText},
		{Name: "first_album_label", Title: "First Album Label", Offset: 93, Width: 60, Kind: KindText},
		{Name: "first_release_catalog_num", Title: "First Release Catalog Number", Offset: 153, Width: 18, Kind: KindText},
		{Name: "ean", Title: "EAN", Offset: 171, Width: 13, Kind: KindText},
		{Name: "isrc", Title: "ISRC", Offset: 184, Width: 12, Kind: KindText},
		{Name: "recording_format", Title: "Recording Format", Offset: 196, Width: 1, Kind: KindText},
		{Name: "recording_technique", Title: "Recording Technique", Offset: 197, Width: 1, Kind: KindText},
		{Name: "media_type", Title: "Media Type", Offset: 198, Width: 3, Kind: KindText},
		{Name: "recording_title", Title: "Recording Title", Offset: 201, Width: 60, Kind: KindText, MinVersion: V22},
		{Name: "version_title", Title: "Version Title", Offset: 261, Width: 60, Kind: KindText, MinVersion: V22},
		{Name: "display_artist", Title: "Display Artist", Offset: 321, Width: 60, Kind: KindText, MinVersion: V22},
		{Name: "record_label", Title: "Record Label", Offset: 381, Width: 60, Kind: KindText, MinVersion: V22},
		{Name: "isrc_validity", Title: "ISRC Validity", Offset: 441, Width: 1, Kind: KindText, MinVersion: V22},
		{Name: "submitter_recording_identifier", Title: "Submitter Recording Identifier", Offset: 442, Width: 14, Kind: KindText, MinVersion: V22},
	},
	Validate: func(r *Record, version CwrVersion) []Warning {
		if isrc := r.Text("isrc"); isrc != "" && len(isrc) != 12 {
			return []Warning{newWarning("isrc", "ISRC", isrc, Warn, "ISRC should be 12 characters")}
		}
		return nil
	},
}

var schemaALT = &Schema{
	CanonicalType: "ALT",
	Title:         "Alternate Title",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "ALT"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "alternate_title", Title: "Alternate Title", Offset: 19, Width: 60, Kind: KindText},
		{Name: "title_type", Title: "Title Type", Offset: 79, Width: 2, Kind: KindEnum, Enum: TitleType},
		{Name: "language_code", Title: "Language Code", Offset: 81, Width: 2, Kind: KindLanguageCode},
	},
}

// NAT (Non-Roman Alphabet Title for a Work) carries the non-roman
// shadow of a work title at its full, non-trimmed width.
var schemaNAT = &Schema{
	CanonicalType: "NAT",
	Title:         "Non-Roman Alphabet Title for a Work",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "NAT"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "title", Title: "Title", Offset: 19, Width: 640, Kind: KindNonRoman, NonRoman: true},
		{Name: "title_type", Title: "Title Type", Offset: 659, Width: 2, Kind: KindEnum, Enum: TitleType},
		{Name: "language_code", Title: "Language Code", Offset: 661, Width: 2, Kind: KindLanguageCode},
	},
}

var schemaINS = &Schema{
	CanonicalType: "INS",
	Title:         "Instrumentation Summary",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "INS"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "number_of_voices", Title: "Number of Voices", Offset: 19, Width: 3, Kind: KindOptionalCount},
		{Name: "standard_instrumentation_type", Title: "Standard Instrumentation Type", Offset: 22, Width: 3, Kind: KindText},
		{Name: "instrumentation_description", Title: "Instrumentation Description", Offset: 25, Width: 50, Kind: KindText},
	},
}

var schemaIND = &Schema{
	CanonicalType: "IND",
	Title:         "Instrumentation Detail",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "IND"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "instrument_code", Title: "Instrument Code", Offset: 19, Width: 3, Kind: KindText},
		{Name: "number_of_players", Title: "Number of Players", Offset: 22, Width: 3, Kind: KindOptionalCount},
	},
}

var schemaCOM = &Schema{
	CanonicalType: "COM",
	Title:         "Composite Component",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "COM"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "title", Title: "Title", Offset: 19, Width: 60, Kind: KindText},
		{Name: "iswc_of_component", Title: "ISWC of Component", Offset: 79, Width: 11, Kind: KindText},
		{Name: "submitter_work_num", Title: "Submitter Work Number", Offset: 90, Width: 14, Kind: KindText},
		{Name: "duration", Title: "Duration", Offset: 104, Width: 6, Kind: KindDuration},
		{Name: "writer_1_last_name", Title: "Writer 1 Last Name", Offset: 110, Width: 45, Kind: KindText},
		{Name: "writer_1_first_name", Title: "Writer 1 First Name", Offset: 155, Width: 30, Kind: KindText},
		{Name: "writer_1_ipi_name_number", Title: "Writer 1 IPI Name Number", Offset: 185, Width: 11, Kind: KindIpiNameNumber},
		{Name: "writer_2_last_name", Title: "Writer 2 Last Name", Offset: 196, Width: 45, Kind: KindText},
		{Name: "writer_2_first_name", Title: "Writer 2 First Name", Offset: 241, Width: 30, Kind: KindText},
		{Name: "writer_2_ipi_name_number", Title: "Writer 2 IPI Name Number", Offset: 271, Width: 11, Kind: KindIpiNameNumber},
		{Name: "writer_1_ipi_base_number", Title: "Writer 1 IPI Base Number", Offset: 282, Width: 13, Kind: KindIpiBaseNumber},
		{Name: "writer_2_ipi_base_number", Title: "Writer 2 IPI Base Number", Offset: 295, Width: 13, Kind: KindIpiBaseNumber},
	},
}
