// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package service

import "github.com/akarpov/memstats/models"

// MergeRecords combines two record lists into one deduplicated list keyed by
// [models.GameRecord.IdentityKey]. When both sides hold the same game, the
// server-originated copy wins; first-occurrence order is preserved.
// Merging a list with itself, or re-merging a merged list, yields the same
// result.
func MergeRecords(primary, secondary []models.GameRecord) []models.GameRecord {
	merged := make([]models.GameRecord, 0, len(primary)+len(secondary))
	index := make(map[string]int, len(primary)+len(secondary))

	add := func(record models.GameRecord) {
		key := record.IdentityKey()
		at, ok := index[key]
		if !ok {
			index[key] = len(merged)
			merged = append(merged, record)
			return
		}
		if merged[at].Source != models.SourceServer && record.Source == models.SourceServer {
			merged[at] = record
		}
	}

	for _, record := range primary {
		add(record)
	}
	for _, record := range secondary {
		add(record)
	}

	return merged
}
