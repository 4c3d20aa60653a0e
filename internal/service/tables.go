package service

import (
	"sort"

	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/models"
)

// selectTables computes the transfer set: the intersection of the tables
// present locally and the tables the task catalogue declares ownership of
// (including the fixed system tables), with the blob table appended
// unconditionally at the end.
//
// The intersection is a single linear merge over sorted copies of both
// inputs, so the cost stays O(n log n) as the catalogue grows. Local tables
// unknown to the catalogue are logged and skipped; they are never transferred
// and never deleted.
func selectTables(local []string, catalogue models.Catalogue, log *logger.Logger) []string {
	localSorted := append([]string(nil), local...)
	knownSorted := append([]string(nil), catalogue.KnownTables()...)
	sort.Strings(localSorted)
	sort.Strings(knownSorted)

	selected := make([]string, 0, len(localSorted))
	i, j := 0, 0
	for i < len(localSorted) && j < len(knownSorted) {
		switch {
		case localSorted[i] == knownSorted[j]:
			if localSorted[i] != models.BlobTable {
				selected = append(selected, localSorted[i])
			}
			i++
			j++
		case localSorted[i] < knownSorted[j]:
			if localSorted[i] != models.BlobTable {
				log.Warn().Str("table", localSorted[i]).
					Msg("local table unknown to the task catalogue, skipping")
			}
			i++
		default:
			j++
		}
	}
	for ; i < len(localSorted); i++ {
		if localSorted[i] != models.BlobTable {
			log.Warn().Str("table", localSorted[i]).
				Msg("local table unknown to the task catalogue, skipping")
		}
	}

	return append(selected, models.BlobTable)
}

// chooseStrategy picks the transfer strategy for an ordinary (non-blob)
// table: whole-table bulk send unless the estimated payload exceeds
// thresholdBytes, in which case the table is streamed record by record after
// a server-side prune. A zero or negative threshold forces bulk always.
func chooseStrategy(rows []models.Row, thresholdBytes int64) models.TransferStrategy {
	if thresholdBytes <= 0 {
		return models.StrategyBulk
	}
	if estimatePayloadBytes(rows) > thresholdBytes {
		return models.StrategyRecordwise
	}
	return models.StrategyBulk
}

// estimatePayloadBytes approximates the serialized size of a row set as the
// sum of its field value lengths. Encoding overhead is ignored; the estimate
// only has to rank payloads against the threshold, not predict wire bytes.
func estimatePayloadBytes(rows []models.Row) int64 {
	var total int64
	for _, row := range rows {
		for _, v := range row.Values {
			total += int64(len(v))
		}
	}
	return total
}
