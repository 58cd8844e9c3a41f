package questionbank

// TypeCount is the number of questions carrying one type label.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// BankStats aggregates counts for a question bank
type BankStats struct {
	StorageKey     string      `json:"storageKey"`
	DisplayName    string      `json:"displayName"`
	TotalQuestions int         `json:"totalQuestions"`
	ByType         []TypeCount `json:"byType"`
	Recall         int         `json:"recall"` // fill-in and short-answer
	Choice         int         `json:"choice"`
}

// Stats computes per-type counts in questionTypes order.
func (qb *QuestionBank) Stats() BankStats {
	counts := make(map[string]int)
	stats := BankStats{
		StorageKey:     qb.StorageKey,
		DisplayName:    qb.DisplayName,
		TotalQuestions: len(qb.Questions),
	}
	for _, q := range qb.Questions {
		counts[q.Type]++
		if q.IsRecall() {
			stats.Recall++
		} else {
			stats.Choice++
		}
	}

	types := qb.QuestionTypes
	if len(types) == 0 {
		types = CollectTypes(qb.Questions)
	}
	stats.ByType = make([]TypeCount, 0, len(types))
	for _, t := range types {
		if t == AllTypes {
			continue
		}
		stats.ByType = append(stats.ByType, TypeCount{Type: t, Count: counts[t]})
	}
	return stats
}
