package stats

import (
	"testing"
	"time"

	"aprendiz/internal/domain/apprentice"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestGenderBuckets(t *testing.T) {
	records := []apprentice.Apprentice{
		{Gender: "Feminino"},
		{Gender: "masculino"},
		{Gender: "  FEMININO "},
	}

	summary := Summarize(records, testNow)
	if summary.Female != 2 || summary.Male != 1 {
		t.Fatalf("expected 2 female / 1 male, got %d/%d", summary.Female, summary.Male)
	}
	if summary.Total != 3 {
		t.Fatalf("expected total 3, got %d", summary.Total)
	}
}

func TestGenderUnknownNotMerged(t *testing.T) {
	records := []apprentice.Apprentice{
		{Gender: "Feminino"},
		{Gender: "outro"},
		{Gender: ""},
	}

	summary := Summarize(records, testNow)
	if summary.Female+summary.Male > summary.Total {
		t.Fatalf("bucket counts exceed total: %+v", summary)
	}
	if summary.OtherGender != 2 {
		t.Fatalf("expected 2 in other bucket, got %d", summary.OtherGender)
	}
}

func TestAgeYearsBorrow(t *testing.T) {
	birth := time.Date(2006, 8, 1, 0, 0, 0, 0, time.UTC)
	years, ok := AgeYears(birth, testNow)
	if !ok {
		t.Fatal("expected valid age")
	}
	// birthday not yet reached in 2025
	if years != 18 {
		t.Fatalf("expected 18, got %d", years)
	}

	birth = time.Date(2006, 6, 15, 0, 0, 0, 0, time.UTC)
	years, _ = AgeYears(birth, testNow)
	if years != 19 {
		t.Fatalf("expected 19 on the birthday itself, got %d", years)
	}
}

func TestAverageAgeExcludesUnknownBirthDates(t *testing.T) {
	records := []apprentice.Apprentice{
		{BirthDate: time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)},
		{}, // unknown birth date
	}

	summary := Summarize(records, testNow)
	if summary.AverageAge != 20 {
		t.Fatalf("expected average 20 over the single valid record, got %v", summary.AverageAge)
	}

	summary = Summarize([]apprentice.Apprentice{{}, {}}, testNow)
	if summary.AverageAge != 0 {
		t.Fatalf("expected defined zero for no valid birth dates, got %v", summary.AverageAge)
	}
}

func TestAverageScoreSkipsZeroes(t *testing.T) {
	records := []apprentice.Apprentice{
		{LastScore: 8},
		{LastScore: 0},
		{LastScore: 6},
	}

	summary := Summarize(records, testNow)
	if summary.AverageScore != 7 {
		t.Fatalf("expected 7.0, got %v", summary.AverageScore)
	}

	summary = Summarize([]apprentice.Apprentice{{LastScore: 0}}, testNow)
	if summary.AverageScore != 0 {
		t.Fatalf("expected 0 when nobody scored, got %v", summary.AverageScore)
	}
}

func TestSectorCountsOmitEmptyAndZero(t *testing.T) {
	records := []apprentice.Apprentice{
		{Role: "Logística"},
		{Role: "Logística"},
		{Role: "TI"},
		{Role: ""},
	}

	counts := SectorCounts(records)
	if len(counts) != 2 {
		t.Fatalf("expected 2 sectors, got %v", counts)
	}

	sum := 0
	for _, c := range counts {
		sum += c.Count
	}
	if sum != 3 {
		t.Fatalf("sector counts should sum to non-empty-sector records, got %d", sum)
	}
	if counts[0].Sector != "Logística" || counts[0].Count != 2 {
		t.Fatalf("expected Logística first with 2, got %+v", counts[0])
	}
}

func TestProgressLabels(t *testing.T) {
	records := []apprentice.Apprentice{
		{Cycle: 4},
		{Cycle: 4},
	}
	progress := Progress(records)

	if progress[0].Percent != 100 || progress[0].Label != LabelDone {
		t.Fatalf("cycle 1 should be concluded: %+v", progress[0])
	}
	if progress[3].Percent != 0 || progress[3].Label != LabelPending {
		t.Fatalf("cycle 4 can never have cycle>4 records: %+v", progress[3])
	}

	mixed := Progress([]apprentice.Apprentice{{Cycle: 3}, {Cycle: 1}})
	if mixed[0].Label != LabelOngoing || mixed[0].Percent != 50 {
		t.Fatalf("expected 50%% em andamento, got %+v", mixed[0])
	}
}

func TestProgressEmptyList(t *testing.T) {
	for _, p := range Progress(nil) {
		if p.Percent != 0 || p.Label != LabelPending {
			t.Fatalf("empty list must yield 0%%/pending, got %+v", p)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, testNow)
	if summary.Total != 0 || summary.AverageAge != 0 || summary.AverageScore != 0 {
		t.Fatalf("expected zeroed summary, got %+v", summary)
	}
	if len(summary.Sectors) != 0 {
		t.Fatalf("expected no sectors, got %v", summary.Sectors)
	}
}
