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

// Transmission and group control records: HDR/GRH/GRT/TRL bracket the
// whole file and each group of transactions within it; ACK closes the
// loop on a previously submitted transaction.

var schemaHDR = &Schema{
	CanonicalType: "HDR",
	Title:         "Transmission Header",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "HDR"},
		{Name: "sender_type", Title: "Sender Type", Offset: 3, Width: 2, Kind: KindSenderType},
		{Name: "sender_id", Title: "Sender ID", Offset: 5, Width: 9, Kind: KindText},
		{Name: "sender_name", Title: "Sender Name", Offset: 14, Width: 45, Kind: KindText},
		{Name: "edi_standard_version", Title: "EDI Standard Version Number", Offset: 59, Width: 5, Kind: KindText},
		{Name: "creation_date", Title: "Creation Date", Offset: 64, Width: 8, Kind: KindDate},
		{Name: "creation_time", Title: "Creation Time", Offset: 72, Width: 6, Kind: KindTime},
		{Name: "transmission_date", Title: "Transmission Date", Offset: 78, Width: 8, Kind: KindDate},
		{Name: "character_set", Title: "Character Set", Offset: 86, Width: 15, Kind: KindText, MinVersion: V21},
		{Name: "cwr_version", Title: "CWR Version", Offset: 101, Width: 3, Kind: KindText, MinVersion: V21},
		{Name: "cwr_revision", Title: "CWR Revision", Offset: 104, Width: 3, Kind: KindText, MinVersion: V22},
		{Name: "software_package", Title: "Software Package", Offset: 107, Width: 30, Kind: KindText, MinVersion: V22},
		{Name: "software_package_version", Title: "Software Package Version", Offset: 137, Width: 30, Kind: KindText, MinVersion: V22},
	},
	Validate: func(r *Record, version CwrVersion) []Warning {
		if r.Text("sender_name") == "" {
			return []Warning{newWarning("sender_name", "Sender Name", "", Critical, "transmission header is missing a sender name")}
		}
		return nil
	},
}

var schemaGRH = &Schema{
	CanonicalType: "GRH",
	Title:         "Group Header",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "GRH"},
		{Name: "transaction_type", Title: "Transaction Type", Offset: 3, Width: 3, Kind: KindEnum, Enum: TransactionType},
		{Name: "group_id", Title: "Group ID", Offset: 6, Width: 5, Kind: KindCount},
		{Name: "version_number", Title: "Version Number For This Transaction Type", Offset: 11, Width: 5, Kind: KindText},
		{Name: "batch_request", Title: "Batch Request", Offset: 16, Width: 10, Kind: KindText, MinVersion: V21},
		{Name: "submission_distribution_type", Title: "Submission/Distribution Type", Offset: 26, Width: 2, Kind: KindText, MinVersion: V21},
	},
}

var schemaGRT = &Schema{
	CanonicalType: "GRT",
	Title:         "Group Trailer",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "GRT"},
		{Name: "group_id", Title: "Group ID", Offset: 3, Width: 5, Kind: KindCount},
		{Name: "transaction_count", Title: "Transaction Count", Offset: 8, Width: 8, Kind: KindCount},
		{Name: "record_count", Title: "Record Count", Offset: 16, Width: 8, Kind: KindCount},
		{Name: "currency_indicator", Title: "Currency Indicator", Offset: 24, Width: 3, Kind: KindCurrencyCode, MinVersion: V21},
		{Name: "total_monetary_value", Title: "Total Monetary Value", Offset: 27, Width: 10, Kind: KindText, MinVersion: V21},
	},
}

var schemaTRL = &Schema{
	CanonicalType: "TRL",
	Title:         "Transmission Trailer",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "TRL"},
		{Name: "group_count", Title: "Group Count", Offset: 3, Width: 5, Kind: KindCount},
		{Name: "transaction_count", Title: "Transaction Count", Offset: 8, Width: 8, Kind: KindCount},
		{Name: "record_count", Title: "Record Count", Offset: 16, Width: 8, Kind: KindCount},
	},
}

var TransactionStatus = newEnumSet("transaction status", false,
	"CO", "Conflict",
	"DU", "Duplicate",
	"RA", "Transaction accepted",
	"AS", "Registration accepted",
	"AC", "Registration accepted with changes",
	"RJ", "Rejected",
	"NP", "No participation",
	"RC", "Claim rejected",
)

var schemaACK = &Schema{
	CanonicalType: "ACK",
	Title:         "Acknowledgement of Transaction",
	Fields: []FieldDef{
		{Name: "record_type", Title: "Record Type", Offset: 0, Width: 3, Kind: KindConstant, Constant: "ACK"},
		{Name: "transaction_sequence_num", Title: "Transaction Sequence Number", Offset: 3, Width: 8, Kind: KindCount},
		{Name: "record_sequence_num", Title: "Record Sequence Number", Offset: 11, Width: 8, Kind: KindCount},
		{Name: "creation_date", Title: "Original Creation Date", Offset: 19, Width: 8, Kind: KindDate},
		{Name: "creation_time", Title: "Original Creation Time", Offset: 27, Width: 6, Kind: KindTime},
		{Name: "original_group_id", Title: "Original Group ID", Offset: 33, Width: 5, Kind: KindCount},
		{Name: "original_transaction_sequence_num", Title: "Original Transaction Sequence Number", Offset: 38, Width: 8, Kind: KindCount},
		{Name: "original_transaction_type", Title: "Original Transaction Type", Offset: 46, Width: 3, Kind: KindEnum, Enum: TransactionType},
		{Name: "creation_title", Title: "Creation Title", Offset: 49, Width: 60, Kind: KindText},
		{Name: "submitter_creation_num", Title: "Submitter Creation Number", Offset: 109, Width: 20, Kind: KindText},
		{Name: "recipient_creation_num", Title: "Recipient Creation Number", Offset: 129, Width: 20, Kind: KindText},
		{Name: "processing_date", Title: "Processing Date", Offset: 149, Width: 8, Kind: KindDate},
		{Name: "transaction_status", Title: "Transaction Status", Offset: 157, Width: 2, Kind: KindEnum, Enum: TransactionStatus},
	},
}
