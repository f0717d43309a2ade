package charts

import "github.com/dmitrijs2005/gophmarks/internal/models"

const (
	TitleAverage      = "Average Marks"
	TitlePerSubject   = "Marks per Subject"
	TitleDistribution = "Marks Distribution"
)

func subjectLabels() []string {
	out := make([]string, len(models.Subjects))
	for i, s := range models.Subjects {
		out[i] = string(s)
	}
	return out
}

// Build returns the bar, line and pie specs for ledger, in that order.
//
// The bar chart averages every record. The line and pie charts plot only the
// first record of the ledger, whatever its length.
func Build(ledger []models.ScoreRecord) []Spec {
	return []Spec{
		Average(ledger),
		PerSubject(ledger),
		Distribution(ledger),
	}
}

// Average is the per-subject mean across all records.
func Average(ledger []models.ScoreRecord) Spec {
	spec := Spec{
		Kind:   KindBar,
		Title:  TitleAverage,
		Series: "mean",
		XLabel: "Subjects",
		YLabel: "Marks",
		X:      subjectLabels(),
	}
	if len(ledger) == 0 {
		return spec
	}

	spec.Y = make([]float64, len(models.Subjects))
	for _, r := range ledger {
		for i, v := range r.Values() {
			spec.Y[i] += float64(v)
		}
	}
	for i := range spec.Y {
		spec.Y[i] /= float64(len(ledger))
	}
	return spec
}

// PerSubject plots the first record as a line over the subjects.
func PerSubject(ledger []models.ScoreRecord) Spec {
	return firstRecord(ledger, Spec{
		Kind:   KindLine,
		Title:  TitlePerSubject,
		Series: "marks",
		XLabel: "Subjects",
		YLabel: "Marks",
		X:      subjectLabels(),
	})
}

// Distribution shows the first record's scores as pie slices.
func Distribution(ledger []models.ScoreRecord) Spec {
	return firstRecord(ledger, Spec{
		Kind:   KindPie,
		Title:  TitleDistribution,
		Series: "marks",
		X:      subjectLabels(),
	})
}

func firstRecord(ledger []models.ScoreRecord, spec Spec) Spec {
	if len(ledger) == 0 {
		return spec
	}
	values := ledger[0].Values()
	spec.Y = make([]float64, len(values))
	for i, v := range values {
		spec.Y[i] = float64(v)
	}
	return spec
}
