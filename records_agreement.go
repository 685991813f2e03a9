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

var PriorRoyaltyStatus = newEnumSet("prior royalty status", false,
	"N", "None",
	"A", "All",
	"D", "Date specified",
)

var PostTermCollectionStatus = newEnumSet("post-term collection status", false,
	"D", "Date specified",
	"N", "None",
	"O", "Open-ended",
)

var InclusionExclusion = newEnumSet("inclusion/exclusion indicator", true,
	"I", "Include",
	"E", "Exclude",
)

var schemaAGR = &Schema{
	CanonicalType: "AGR",
	Title:         "Agreement Supporting Work Registration",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "AGR"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "submitter_agreement_number", Title: "Submitter Agreement Number", Offset: 19, Width: 14, Kind: KindText},
		{Name: "international_standard_agreement_code", Title: "International Standard Agreement Code", Offset: 33, Width: 14, Kind: KindText},
		{Name: "agreement_type", Title: "Agreement Type", Offset: 47, Width: 2, Kind: KindEnum, Enum: AgreementType},
		{Name: "agreement_start_date", Title: "Agreement Start Date", Offset: 49, Width: 8, Kind: KindDate},
		{Name: "agreement_end_date", Title: "Agreement End Date", Offset: 57, Width: 8, Kind: KindOptionalDate},
		{Name: "retention_end_date", Title: "Retention End Date", Offset: 65, Width: 8, Kind: KindOptionalDate},
		{Name: "prior_royalty_status", Title: "Prior Royalty Status", Offset: 73, Width: 1, Kind: KindEnum, Enum: PriorRoyaltyStatus},
		{Name: "prior_royalty_start_date", Title: "Prior Royalty Start Date", Offset: 74, Width: 8, Kind: KindOptionalDate},
		{Name: "post_term_collection_status", Title: "Post-term Collection Status", Offset: 82, Width: 1, Kind: KindEnum, Enum: PostTermCollectionStatus},
		{Name: "post_term_collection_end_date", Title: "Post-term Collection End Date", Offset: 83, Width: 8, Kind: KindOptionalDate},
		{Name: "date_of_signature_of_agreement", Title: "Date of Signature of Agreement", Offset: 91, Width: 8, Kind: KindOptionalDate},
		{Name: "number_of_works", Title: "Number of Works", Offset: 99, Width: 5, Kind: KindCount},
		{Name: "sales_manufacture_clause", Title: "Sales/Manufacture Clause", Offset: 104, Width: 1, Kind: KindEnum, Enum: SalesManufactureClause},
		{Name: "shares_change", Title: "Shares Change", Offset: 105, Width: 1, Kind: KindYesNo},
		{Name: "advance_given", Title: "Advance Given", Offset: 106, Width: 1, Kind: KindYesNo},
		{Name: "society_assigned_agreement_number", Title: "Society-assigned Agreement Number", Offset: 107, Width: 14, Kind: KindText, MinVersion: V21},
	},
	Validate: func(r *Record, version CwrVersion) []Warning {
		var warnings []Warning
		start := r.Date("agreement_start_date")
		end := r.Date("agreement_end_date")
		retention := r.Date("retention_end_date")
		priorRoyaltyStart := r.Date("prior_royalty_start_date")

		if r.Text("prior_royalty_status") == "D" && priorRoyaltyStart == nil {
			warnings = append(warnings, newWarning("prior_royalty_start_date", "Prior Royalty Start Date", "", Critical,
				"prior royalty start date is required when prior royalty status is 'D' (Date specified)"))
		}
		if r.Text("post_term_collection_status") == "D" && r.Date("post_term_collection_end_date") == nil {
			warnings = append(warnings, newWarning("post_term_collection_end_date", "Post-term Collection End Date", "", Critical,
				"post-term collection end date is required when post-term collection status is 'D' (Date specified)"))
		}
		if start != nil && end != nil && end.Time().Before(start.Time()) {
			warnings = append(warnings, newWarning("agreement_end_date", "Agreement End Date", "", Critical,
				"Agreement End Date must be >= Agreement Start Date"))
		}
		if end != nil && retention != nil && retention.Time().Before(end.Time()) {
			warnings = append(warnings, newWarning("retention_end_date", "Retention End Date", "", Critical,
				"retention end date must be on or after agreement end date"))
		}
		if start != nil && priorRoyaltyStart != nil && !priorRoyaltyStart.Time().Before(start.Time()) {
			warnings = append(warnings, newWarning("prior_royalty_start_date", "Prior Royalty Start Date", "", Critical,
				"prior royalty start date must be before agreement start date"))
		}
		return warnings
	},
}

// TER (Territory in Agreement) follows an AGR or IPA record to declare
// the territories a role or right applies to.
var schemaTER = &Schema{
	CanonicalType: "TER",
	Title:         "Territory in Agreement",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "TER"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "inclusion_exclusion_indicator", Title: "Inclusion/Exclusion Indicator", Offset: 19, Width: 1, Kind: KindEnum, Enum: InclusionExclusion},
		{Name: "tis_numeric_code", Title: "TIS Numeric Code", Offset: 20, Width: 4, Kind: KindTisCode},
	},
}

// IPA (Interested Party of Agreement) declares one of the two parties to
// an AGR and the PR/MR/SR shares and affiliations it brings to it.
var schemaIPA = &Schema{
	CanonicalType: "IPA",
	Title:         "Interested Party of Agreement",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "IPA"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "agreement_role_code", Title: "Agreement Role Code", Offset: 19, Width: 2, Kind: KindEnum, Enum: AgreementRoleCode},
		{Name: "interested_party_ipi_name_number", Title: "Interested Party IPI Name Number", Offset: 21, Width: 11, Kind: KindIpiNameNumber},
		{Name: "ipi_base_number", Title: "IPI Base Number", Offset: 32, Width: 13, Kind: KindIpiBaseNumber},
		{Name: "interested_party_num", Title: "Interested Party Number", Offset: 45, Width: 9, Kind: KindText},
		{Name: "interested_party_last_name", Title: "Interested Party Last Name", Offset: 54, Width: 45, Kind: KindText},
		{Name: "interested_party_writer_first_name", Title: "Interested Party Writer First Name", Offset: 99, Width: 30, Kind: KindText},
		{Name: "pr_affiliation_society", Title: "PR Affiliation Society", Offset: 129, Width: 3, Kind: KindSocietyCode},
		{Name: "pr_share", Title: "PR Share", Offset: 132, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "mr_affiliation_society", Title: "MR Affiliation Society", Offset: 137, Width: 3, Kind: KindSocietyCode},
		{Name: "mr_share", Title: "MR Share", Offset: 140, Width: 5, Kind: KindOptionalOwnershipShare},
		{Name: "sr_affiliation_society", Title: "SR Affiliation Society", Offset: 145, Width: 3, Kind: KindSocietyCode},
		{Name: "sr_share", Title: "SR Share", Offset: 148, Width: 5, Kind: KindOptionalOwnershipShare},
	},
	Validate: func(r *Record, version CwrVersion) []Warning {
		var warnings []Warning
		checkPair := func(shareField, societyField, label string) {
			share := r.IntPtr(shareField)
			society := r.Text(societyField)
			if share != nil && *share > 0 && society == "" {
				warnings = append(warnings, newWarning(societyField, label, "", Critical,
					label+" share is present but no affiliation society was given"))
			}
		}
		checkPair("pr_share", "pr_affiliation_society", "PR Affiliation Society")
		checkPair("mr_share", "mr_affiliation_society", "MR Affiliation Society")
		checkPair("sr_share", "sr_affiliation_society", "SR Affiliation Society")

		if r.Text("agreement_role_code") == "AC" {
			pr := r.IntPtr("pr_share")
			mr := r.IntPtr("mr_share")
			sr := r.IntPtr("sr_share")
			if (pr == nil || *pr == 0) && (mr == nil || *mr == 0) && (sr == nil || *sr == 0) {
				warnings = append(warnings, newWarning("agreement_role_code", "Agreement Role Code", "", Warn,
					"acquirer IPA declares no PR, MR or SR share"))
			}
		}
		return warnings
	},
}
