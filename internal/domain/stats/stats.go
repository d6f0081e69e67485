package stats

import (
	"math"
	"sort"
	"strings"
	"time"

	"aprendiz/internal/domain/apprentice"
	"aprendiz/internal/domain/evaluation"
	"aprendiz/internal/domain/normalize"
)

// Progress labels, straight from the dashboard vocabulary.
const (
	LabelDone    = "Concluído"
	LabelOngoing = "Em andamento"
	LabelPending = "Pendente"
)

type SectorCount struct {
	Sector string `json:"sector"`
	Count  int    `json:"count"`
}

type CycleProgress struct {
	Cycle   int    `json:"cycle"`
	Percent int    `json:"percent"`
	Label   string `json:"label"`
}

type Summary struct {
	Total        int             `json:"total"`
	Female       int             `json:"female"`
	Male         int             `json:"male"`
	OtherGender  int             `json:"otherGender"`
	FemalePct    int             `json:"femalePct"`
	MalePct      int             `json:"malePct"`
	AverageAge   float64         `json:"averageAge"`
	AverageScore float64         `json:"averageScore"`
	Sectors      []SectorCount   `json:"sectors"`
	Cycles       []CycleProgress `json:"cycles"`
	StatusCounts map[string]int  `json:"statusCounts"`
}

// Summarize derives every dashboard figure from the record list in one pass
// family. It is pure: the input is never mutated, and an empty list produces
// zeros rather than NaNs or panics.
func Summarize(records []apprentice.Apprentice, now time.Time) Summary {
	summary := Summary{
		Total:        len(records),
		Sectors:      SectorCounts(records),
		Cycles:       Progress(records),
		StatusCounts: statusCounts(records),
	}

	var ageSum, ageCount int
	var scoreSum float64
	var scoreCount int
	for _, record := range records {
		switch genderBucket(record.Gender) {
		case "feminino":
			summary.Female++
		case "masculino":
			summary.Male++
		default:
			summary.OtherGender++
		}
		if years, ok := AgeYears(record.BirthDate, now); ok {
			ageSum += years
			ageCount++
		}
		if record.LastScore > 0 {
			scoreSum += record.LastScore
			scoreCount++
		}
	}

	if summary.Total > 0 {
		summary.FemalePct = int(math.Round(100 * float64(summary.Female) / float64(summary.Total)))
		summary.MalePct = int(math.Round(100 * float64(summary.Male) / float64(summary.Total)))
	}
	if ageCount > 0 {
		summary.AverageAge = round1(float64(ageSum) / float64(ageCount))
	}
	if scoreCount > 0 {
		summary.AverageScore = round1(scoreSum / float64(scoreCount))
	}
	return summary
}

// AgeYears computes whole years between birth and now with the calendar
// borrow: the year decrements when the current month/day precedes the birth
// month/day. Unknown birth dates report ok=false and are excluded from
// averages entirely, never treated as age zero.
func AgeYears(birth, now time.Time) (int, bool) {
	if birth.IsZero() || birth.After(now) {
		return 0, false
	}
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0, false
	}
	return years, true
}

// SectorCounts groups by the role/sector field. Records with an empty sector
// are skipped and sectors with zero records simply do not appear.
func SectorCounts(records []apprentice.Apprentice) []SectorCount {
	counts := map[string]int{}
	for _, record := range records {
		sector := strings.TrimSpace(record.Role)
		if sector == "" {
			continue
		}
		counts[sector]++
	}
	result := make([]SectorCount, 0, len(counts))
	for sector, count := range counts {
		result = append(result, SectorCount{Sector: sector, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			return result[i].Sector < result[j].Sector
		}
		return result[i].Count > result[j].Count
	})
	return result
}

// Progress reports, per cycle N, the share of apprentices already past it:
// round(100 * count(cycle > N) / total). A total of zero yields zero.
func Progress(records []apprentice.Apprentice) []CycleProgress {
	total := len(records)
	result := make([]CycleProgress, 0, evaluation.MaxCycle)
	for n := 1; n <= evaluation.MaxCycle; n++ {
		past := 0
		for _, record := range records {
			if record.Cycle > n {
				past++
			}
		}
		percent := 0
		if total > 0 {
			percent = int(math.Round(100 * float64(past) / float64(total)))
		}
		result = append(result, CycleProgress{Cycle: n, Percent: percent, Label: ProgressLabel(percent)})
	}
	return result
}

func ProgressLabel(percent int) string {
	switch {
	case percent >= 100:
		return LabelDone
	case percent > 0:
		return LabelOngoing
	default:
		return LabelPending
	}
}

func statusCounts(records []apprentice.Apprentice) map[string]int {
	counts := map[string]int{
		apprentice.StatusNotEvaluated: 0,
		apprentice.StatusDismiss:      0,
		apprentice.StatusRecover:      0,
		apprentice.StatusFit:          0,
	}
	for _, record := range records {
		if apprentice.ValidStatus(record.Status) {
			counts[record.Status]++
		}
	}
	return counts
}

// genderBucket folds case, whitespace and accents before comparing against
// the two named buckets; everything else lands in other/unknown and is never
// silently merged.
func genderBucket(raw string) string {
	folded := normalize.FoldKey(raw)
	switch folded {
	case "feminino", "masculino":
		return folded
	}
	return "other"
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
