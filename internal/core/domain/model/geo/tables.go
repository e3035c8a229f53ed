package geo

// Static reference tables, hand-curated against the Indian pincode layout.
// Best-effort approximation, not an authoritative registry: sparse coverage
// is expected and unmatched prefixes degrade to Unknown at resolution time.

// referenceRegionEntries returns the 2-digit prefix table.
//
// The table carries a known duplicate: prefix "50" appears as AP and again
// as TG (Hyderabad-area codes predate the state split). The loader keeps the
// last row (TG) and records the conflict for data-owner review.
func referenceRegionEntries() []RegionEntry {
	return []RegionEntry{
		{Prefix: "11", Region: "DL"},
		{Prefix: "12", Region: "HR"},
		{Prefix: "13", Region: "HR"},
		{Prefix: "14", Region: "PB"},
		{Prefix: "15", Region: "PB"},
		{Prefix: "16", Region: "PB"},
		{Prefix: "17", Region: "HP"},
		{Prefix: "18", Region: "JK"},
		{Prefix: "19", Region: "JK"},
		{Prefix: "20", Region: "UP"},
		{Prefix: "21", Region: "UP"},
		{Prefix: "22", Region: "UP"},
		{Prefix: "23", Region: "UP"},
		{Prefix: "24", Region: "UK"},
		{Prefix: "25", Region: "UP"},
		{Prefix: "26", Region: "UP"},
		{Prefix: "27", Region: "UP"},
		{Prefix: "28", Region: "UP"},
		{Prefix: "30", Region: "RJ"},
		{Prefix: "31", Region: "RJ"},
		{Prefix: "32", Region: "RJ"},
		{Prefix: "33", Region: "RJ"},
		{Prefix: "34", Region: "RJ"},
		{Prefix: "36", Region: "GJ"},
		{Prefix: "37", Region: "GJ"},
		{Prefix: "38", Region: "GJ"},
		{Prefix: "39", Region: "GJ"},
		{Prefix: "40", Region: "MH"},
		{Prefix: "41", Region: "MH"},
		{Prefix: "42", Region: "MH"},
		{Prefix: "43", Region: "MH"},
		{Prefix: "44", Region: "MH"},
		{Prefix: "45", Region: "MP"},
		{Prefix: "46", Region: "MP"},
		{Prefix: "47", Region: "MP"},
		{Prefix: "48", Region: "MP"},
		{Prefix: "49", Region: "CG"},
		{Prefix: "50", Region: "AP"},
		{Prefix: "51", Region: "AP"},
		{Prefix: "52", Region: "AP"},
		{Prefix: "53", Region: "AP"},
		{Prefix: "56", Region: "KA"},
		{Prefix: "57", Region: "KA"},
		{Prefix: "58", Region: "KA"},
		{Prefix: "59", Region: "KA"},
		{Prefix: "60", Region: "TN"},
		{Prefix: "61", Region: "TN"},
		{Prefix: "62", Region: "TN"},
		{Prefix: "63", Region: "TN"},
		{Prefix: "64", Region: "TN"},
		{Prefix: "67", Region: "KL"},
		{Prefix: "68", Region: "KL"},
		{Prefix: "69", Region: "KL"},
		{Prefix: "70", Region: "WB"},
		{Prefix: "71", Region: "WB"},
		{Prefix: "72", Region: "WB"},
		{Prefix: "73", Region: "WB"},
		{Prefix: "74", Region: "WB"},
		{Prefix: "75", Region: "OD"},
		{Prefix: "76", Region: "OD"},
		{Prefix: "77", Region: "OD"},
		{Prefix: "78", Region: "AS"},
		{Prefix: "80", Region: "BR"},
		{Prefix: "81", Region: "BR"},
		{Prefix: "82", Region: "JH"},
		{Prefix: "83", Region: "JH"},
		{Prefix: "84", Region: "BR"},
		{Prefix: "85", Region: "BR"},
		// duplicate key, last row wins; see Directory.Conflicts
		{Prefix: "50", Region: "TG"},
	}
}

// referenceSettlementEntries returns the 3-digit prefix table. Sparse by
// design: only major cities are enumerated.
//
// The table carries a known duplicate: prefix "416" appears as Kolhapur and
// again as Sangli (both districts share the 416 band). The loader keeps the
// last row (Sangli) and records the conflict.
func referenceSettlementEntries() []SettlementEntry {
	return []SettlementEntry{
		{Prefix: "110", Name: "New Delhi", Region: "DL"},
		{Prefix: "122", Name: "Gurugram", Region: "HR"},
		{Prefix: "160", Name: "Chandigarh", Region: "PB"},
		{Prefix: "201", Name: "Noida", Region: "UP"},
		{Prefix: "208", Name: "Kanpur", Region: "UP"},
		{Prefix: "226", Name: "Lucknow", Region: "UP"},
		{Prefix: "248", Name: "Dehradun", Region: "UK"},
		{Prefix: "302", Name: "Jaipur", Region: "RJ"},
		{Prefix: "313", Name: "Udaipur", Region: "RJ"},
		{Prefix: "380", Name: "Ahmedabad", Region: "GJ"},
		{Prefix: "390", Name: "Vadodara", Region: "GJ"},
		{Prefix: "395", Name: "Surat", Region: "GJ"},
		{Prefix: "400", Name: "Mumbai", Region: "MH"},
		{Prefix: "411", Name: "Pune", Region: "MH"},
		{Prefix: "416", Name: "Kolhapur", Region: "MH"},
		{Prefix: "422", Name: "Nashik", Region: "MH"},
		{Prefix: "440", Name: "Nagpur", Region: "MH"},
		{Prefix: "452", Name: "Indore", Region: "MP"},
		{Prefix: "462", Name: "Bhopal", Region: "MP"},
		{Prefix: "492", Name: "Raipur", Region: "CG"},
		{Prefix: "500", Name: "Hyderabad", Region: "TG"},
		{Prefix: "520", Name: "Vijayawada", Region: "AP"},
		{Prefix: "530", Name: "Visakhapatnam", Region: "AP"},
		{Prefix: "560", Name: "Bengaluru", Region: "KA"},
		{Prefix: "570", Name: "Mysuru", Region: "KA"},
		{Prefix: "580", Name: "Hubballi", Region: "KA"},
		{Prefix: "600", Name: "Chennai", Region: "TN"},
		{Prefix: "620", Name: "Tiruchirappalli", Region: "TN"},
		{Prefix: "641", Name: "Coimbatore", Region: "TN"},
		{Prefix: "682", Name: "Kochi", Region: "KL"},
		{Prefix: "695", Name: "Thiruvananthapuram", Region: "KL"},
		{Prefix: "700", Name: "Kolkata", Region: "WB"},
		{Prefix: "751", Name: "Bhubaneswar", Region: "OD"},
		{Prefix: "781", Name: "Guwahati", Region: "AS"},
		{Prefix: "800", Name: "Patna", Region: "BR"},
		// duplicate key, last row wins; see Directory.Conflicts
		{Prefix: "416", Name: "Sangli", Region: "MH"},
	}
}

// referenceBorderEntries returns the region border table. Rows are directed
// as written and not guaranteed symmetric: DL lists HR and UP, but neither
// lists DL back. AreNeighbors tolerates this with directional-OR; the audit
// job reports the asymmetric rows.
func referenceBorderEntries() []BorderEntry {
	return []BorderEntry{
		{Region: "DL", Neighbors: []RegionCode{"HR", "UP"}},
		{Region: "HR", Neighbors: []RegionCode{"PB", "RJ", "UP"}},
		{Region: "PB", Neighbors: []RegionCode{"HP", "HR", "RJ"}},
		{Region: "HP", Neighbors: []RegionCode{"JK", "PB", "UK"}},
		{Region: "JK", Neighbors: []RegionCode{"HP"}},
		{Region: "UK", Neighbors: []RegionCode{"HP", "UP"}},
		{Region: "UP", Neighbors: []RegionCode{"UK", "HR", "RJ", "MP", "CG", "BR", "JH"}},
		{Region: "RJ", Neighbors: []RegionCode{"PB", "HR", "UP", "MP", "GJ"}},
		{Region: "GJ", Neighbors: []RegionCode{"RJ", "MP", "MH"}},
		{Region: "MP", Neighbors: []RegionCode{"RJ", "UP", "CG", "MH", "GJ"}},
		{Region: "CG", Neighbors: []RegionCode{"MP", "UP", "JH", "OD", "TG", "AP", "MH"}},
		{Region: "MH", Neighbors: []RegionCode{"GJ", "MP", "CG", "TG", "KA"}},
		{Region: "TG", Neighbors: []RegionCode{"MH", "CG", "KA", "AP"}},
		{Region: "AP", Neighbors: []RegionCode{"TG", "CG", "OD", "KA", "TN"}},
		{Region: "KA", Neighbors: []RegionCode{"MH", "TG", "AP", "TN", "KL"}},
		{Region: "TN", Neighbors: []RegionCode{"AP", "KA", "KL"}},
		{Region: "KL", Neighbors: []RegionCode{"KA", "TN"}},
		{Region: "OD", Neighbors: []RegionCode{"WB", "JH", "CG", "AP"}},
		{Region: "WB", Neighbors: []RegionCode{"OD", "JH", "BR", "AS"}},
		{Region: "BR", Neighbors: []RegionCode{"UP", "JH", "WB"}},
		{Region: "JH", Neighbors: []RegionCode{"BR", "WB", "OD", "CG", "UP"}},
		{Region: "AS", Neighbors: []RegionCode{"WB"}},
	}
}
