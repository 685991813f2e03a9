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

// NPA (Non-Roman Alphabet Agreement Party Name) is the non-roman shadow
// of an IPA's party name.
var schemaNPA = &Schema{
	CanonicalType: "NPA",
	Title:         "Non-Roman Alphabet Agreement Party Name",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "NPA"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "interested_party_name", Title: "Interested Party Name", Offset: 19, Width: 160, Kind: KindNonRoman, NonRoman: true},
		{Name: "interested_party_writer_first_name", Title: "Interested Party Writer First Name", Offset: 179, Width: 160, Kind: KindNonRoman, NonRoman: true},
		{Name: "language_code", Title: "Language Code", Offset: 339, Width: 2, Kind: KindLanguageCode},
	},
}

// SPU (Publisher Controlled by Submitter); OPU is its "other publisher"
// alias used when the submitter is not the original publisher.
var schemaSPU = &Schema{
	CanonicalType: "SPU",
	Title:         "Publisher Controlled by Submitter",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "SPU"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "publisher_sequence_num", Title: "Publisher Sequence Number", Offset: 19, Width: 2, Kind: KindCount},
		{Name: "interested_party_num", Title: "Interested Party Number", Offset: 21, Width: 9, Kind: KindText},
		{Name: "publisher_name", Title: "Publisher Name", Offset: 30, Width: 45, Kind: KindText},
		{Name: "publisher_unknown_indicator", Title: "Publisher Unknown Indicator", Offset: 75, Width: 1, Kind: KindFlagYNU},
		{Name: "publisher_type", Title: "Publisher Type", Offset: 76, Width: 2, Kind: KindEnum, Enum: PublisherType},
		{Name: "tax_id_num", Title: "Tax ID Number", Offset: 78, Width: 9, Kind: KindText},
		{Name: "publisher_ipi_name_number", Title: "Publisher IPI Name Number", Offset: 87, Width: 11, Kind: KindIpiNameNumber},
		{Name: "submitter_agreement_number", Title: "Submitter Agreement Number", Offset: 98, Width: 14, Kind: KindText},
		{Name: "pr_affiliation_society", Title: "PR Affiliation Society", Offset: 112, Width: 3, Kind: KindSocietyCode},
		{Name: "pr_ownership_share", Title: "PR Ownership Share", Offset: 115, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "mr_society", Title: "MR Society", Offset: 120, Width: 3, Kind: KindSocietyCode},
		{Name: "mr_ownership_share", Title: "MR Ownership Share", Offset: 123, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "sr_society", Title: "SR Society", Offset: 128, Width: 3, Kind: KindSocietyCode},
		{Name: "sr_ownership_share", Title: "SR Ownership Share", Offset: 131, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "special_agreements_indicator", Title: "Special Agreements Indicator", Offset: 136, Width: 1, Kind: KindText},
		{Name: "first_recording_refusal_ind", Title: "First Recording Refusal Indicator", Offset: 137, Width: 1, Kind: KindYesNo},
		{Name: "publisher_ipi_base_number", Title: "Publisher IPI Base Number", Offset: 139, Width: 13, Kind: KindIpiBaseNumber},
		{Name: "international_standard_agreement_code", Title: "International Standard Agreement Code", Offset: 152, Width: 14, Kind: KindText, MinVersion: V21},
		{Name: "society_assigned_agreement_number", Title: "Society-assigned Agreement Number", Offset: 166, Width: 14, Kind: KindText, MinVersion: V21},
		{Name: "agreement_type", Title: "Agreement Type", Offset: 180, Width: 2, Kind: KindEnum, Enum: AgreementType, MinVersion: V21},
		{Name: "usa_license_ind", Title: "USA License Indicator", Offset: 182, Width: 1, Kind: KindFlagYNU, MinVersion: V21},
	},
	Validate: func(r *Record, version CwrVersion) []Warning {
		if r.RecordTypeCode() == "SPU" {
			var warnings []Warning
			if r.Text("publisher_name") == "" {
				warnings = append(warnings, newWarning("publisher_name", "Publisher Name", "", Critical,
					"Publisher Name is required on an SPU record"))
			}
			if r.Text("interested_party_num") == "" {
				warnings = append(warnings, newWarning("interested_party_num", "Interested Party Number", "", Critical,
					"Interested Party Number is required on an SPU record"))
			}
			return warnings
		}
		if r.Flag("publisher_unknown_indicator") != FlagYes && r.Text("publisher_name") == "" && r.Text("interested_party_num") == "" {
			return []Warning{newWarning("publisher_name", "Publisher Name", "", Warn,
				"publisher not marked unknown but neither a name nor an interested party number was given")}
		}
		return nil
	},
}

// NPN (Non-Roman Alphabet Publisher Name) is SPU's non-roman shadow.
var schemaNPN = &Schema{
	CanonicalType: "NPN",
	Title:         "Non-Roman Alphabet Publisher Name",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "NPN"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "publisher_sequence_num", Title: "Publisher Sequence Number", Offset: 19, Width: 2, Kind: KindCount},
		{Name: "interested_party_num", Title: "Interested Party Number", Offset: 21, Width: 9, Kind: KindText},
		{Name: "publisher_name", Title: "Publisher Name", Offset: 30, Width: 480, Kind: KindNonRoman, NonRoman: true},
		{Name: "language_code", Title: "Language Code", Offset: 510, Width: 2, Kind: KindLanguageCode},
	},
}

// SPT (Publisher Territory of Control); OPT is its "other publisher"
// alias, same layout.
var schemaSPT = &Schema{
	CanonicalType: "SPT",
	Title:         "Publisher Territory of Control",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "SPT"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "interested_party_num", Title: "Interested Party Number", Offset: 19, Width: 9, Kind: KindText},
		{Name: "pr_collection_share", Title: "PR Collection Share", Offset: 28, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "mr_collection_share", Title: "MR Collection Share", Offset: 33, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "sr_collection_share", Title: "SR Collection Share", Offset: 38, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "inclusion_exclusion_indicator", Title: "Inclusion/Exclusion Indicator", Offset: 43, Width: 1, Kind: KindEnum, Enum: InclusionExclusion},
		{Name: "tis_numeric_code", Title: "TIS Numeric Code", Offset: 44, Width: 4, Kind: KindTisCode},
		{Name: "shares_change", Title: "Shares Change", Offset: 48, Width: 1, Kind: KindYesNo},
		{Name: "sequence_num", Title: "Sequence Number", Offset: 49, Width: 3, Kind: KindCount},
	},
}

// SWR (Writer Controlled by Submitter); OWR is its "other writer" alias.
var schemaSWR = &Schema{
	CanonicalType: "SWR",
	Title:         "Writer Controlled by Submitter",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "SWR"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "interested_party_num", Title: "Interested Party Number", Offset: 19, Width: 9, Kind: KindText},
		{Name: "writer_last_name", Title: "Writer Last Name", Offset: 28, Width: 45, Kind: KindText},
		{Name: "writer_first_name", Title: "Writer First Name", Offset: 73, Width: 30, Kind: KindText},
		{Name: "writer_unknown_indicator", Title: "Writer Unknown Indicator", Offset: 103, Width: 1, Kind: KindFlagYNU},
		{Name: "writer_designation_code", Title: "Writer Designation Code", Offset: 104, Width: 2, Kind: KindEnum, Enum: WriterDesignationCode},
		{Name: "tax_id_num", Title: "Tax ID Number", Offset: 106, Width: 9, Kind: KindText},
		{Name: "writer_ipi_name_number", Title: "Writer IPI Name Number", Offset: 115, Width: 11, Kind: KindIpiNameNumber},
		{Name: "pr_affiliation_society", Title: "PR Affiliation Society", Offset: 126, Width: 3, Kind: KindSocietyCode},
		{Name: "pr_ownership_share", Title: "PR Ownership Share", Offset: 129, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "mr_society", Title: "MR Society", Offset: 134, Width: 3, Kind: KindSocietyCode},
		{Name: "mr_ownership_share", Title: "MR Ownership Share", Offset: 137, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "sr_society", Title: "SR Society", Offset: 142, Width: 3, Kind: KindSocietyCode},
		{Name: "sr_ownership_share", Title: "SR Ownership Share", Offset: 145, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "reversionary_indicator", Title: "Reversionary Indicator", Offset: 150, Width: 1, Kind: KindFlagYNU},
		{Name: "first_recording_refusal_ind", Title: "First Recording Refusal Indicator", Offset: 151, Width: 1, Kind: KindYesNo},
		{Name: "work_for_hire_indicator", Title: "Work For Hire Indicator", Offset: 152, Width: 1, Kind: KindEnum, Enum: WorkForHireIndicator},
		{Name: "writer_ipi_base_number", Title: "Writer IPI Base Number", Offset: 154, Width: 13, Kind: KindIpiBaseNumber},
		{Name: "personal_number", Title: "Personal Number", Offset: 167, Width: 12, Kind: KindText},
		{Name: "usa_license_ind", Title: "USA License Indicator", Offset: 179, Width: 1, Kind: KindFlagYNU, MinVersion: V21},
	},
	Validate: func(r *Record, version CwrVersion) []Warning {
		if r.Text("interested_party_num") == "" && r.Text("writer_last_name") == "" {
			return []Warning{newWarning("interested_party_num", "Interested Party Number", "", Critical,
				"Either Interested Party Number or Writer Last Name must be provided")}
		}
		return nil
	},
}

// NWN (Non-Roman Alphabet Writer Name) is SWR's non-roman shadow.
var schemaNWN = &Schema{
	CanonicalType: "NWN",
	Title:         "Non-Roman Alphabet Writer Name",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "NWN"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "interested_party_num", Title: "Interested Party Number", Offset: 19, Width: 9, Kind: KindText},
		{Name: "writer_last_name", Title: "Writer Last Name", Offset: 28, Width: 160, Kind: KindNonRoman, NonRoman: true},
		{Name: "writer_first_name", Title: "Writer First Name", Offset: 188, Width: 160, Kind: KindNonRoman, NonRoman: true},
		{Name: "language_code", Title: "Language Code", Offset: 348, Width: 2, Kind: KindLanguageCode},
	},
}

// SWT (Writer Territory of Control); OWT is its "other writer" alias.
var schemaSWT = &Schema{
	CanonicalType: "SWT",
	Title:         "Writer Territory of Control",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "SWT"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "interested_party_num", Title: "Interested Party Number", Offset: 19, Width: 9, Kind: KindText},
		{Name: "pr_collection_share", Title: "PR Collection Share", Offset: 28, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "mr_collection_share", Title: "MR Collection Share", Offset: 33, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "sr_collection_share", Title: "SR Collection Share", Offset: 38, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "inclusion_exclusion_indicator", Title: "Inclusion/Exclusion Indicator", Offset: 43, Width: 1, Kind: KindEnum, Enum: InclusionExclusion},
		{Name: "tis_numeric_code", Title: "TIS Numeric Code", Offset: 44, Width: 4, Kind: KindTisCode},
		{Name: "shares_change", Title: "Shares Change", Offset: 48, Width: 1, Kind: KindYesNo},
		{Name: "sequence_num", Title: "Sequence Number", Offset: 49, Width: 3, Kind: KindCount},
	},
}

// PWR (Publisher for Writer) links a writer back to the original
// publisher administering them.
var schemaPWR = &Schema{
	CanonicalType: "PWR",
	Title:         "Publisher for Writer",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "PWR"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "publisher_ip_num", Title: "Publisher IP Number", Offset: 19, Width: 9, Kind: KindText},
		{Name: "publisher_name", Title: "Publisher Name", Offset: 28, Width: 45, Kind: KindText},
		{Name: "submitter_agreement_number", Title: "Submitter Agreement Number", Offset: 73, Width: 14, Kind: KindText},
		{Name: "society_assigned_agreement_number", Title: "Society-assigned Agreement Number", Offset: 87, Width: 14, Kind: KindText, MinVersion: V21},
		{Name: "writer_ip_num", Title: "Writer IP Number", Offset: 101, Width: 9, Kind: KindText, MinVersion: V21},
		{Name: "publisher_sequence_num", Title: "Publisher Sequence Number", Offset: 110, Width: 2, Kind: KindOptionalCount, MinVersion: V21},
	},
}
