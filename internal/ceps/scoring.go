package ceps

// AnswerMap maps question id (1..55) to the respondent's Likert value (1..5).
// Partial while a session is in progress; validation of ranges happens at the
// session boundary, not here.
type AnswerMap map[int]int

// Level bands applied to a 0..25 competency-scale score.
const (
	LevelBajo     = "Bajo"
	LevelPromedio = "Promedio"
	LevelAlto     = "Alto"
)

type RadarPoint struct {
	Subject  string `json:"subject"`
	A        int    `json:"A"`
	FullMark int    `json:"fullMark"`
}

// ScoreResult is derived from an AnswerMap and always recomputable from it;
// the answer map, not this struct, is the source of truth.
type ScoreResult struct {
	Scores       map[string]int    `json:"scores"`
	LevelByComp  map[string]string `json:"level_by_comp"`
	RadarData    []RadarPoint      `json:"radar_data"`
	TotalScore   int               `json:"total_score"`
	OverallLevel string            `json:"overall_level"`
	Correction   int               `json:"correction"`
}

// ComputeScores converts an answer map into the 10 competency scores, level
// bands, radar projection and aggregate level. Missing answers count as 0 so
// partial maps yield preview results; only a complete map (Complete == true)
// produces a valid final report.
func ComputeScores(answers AnswerMap) ScoreResult {
	correction := correctionFactor(answers)

	res := ScoreResult{
		Scores:      make(map[string]int, len(competencies)),
		LevelByComp: make(map[string]string, len(competencies)),
		RadarData:   make([]RadarPoint, 0, len(competencies)),
		Correction:  correction,
	}

	for _, c := range competencies {
		raw := 6
		for _, item := range c.Items {
			if c.isReverse(item) {
				raw -= answers[item]
			} else {
				raw += answers[item]
			}
		}
		score := raw - correction
		if score < 0 {
			score = 0
		}
		res.Scores[c.Key] = score
		res.LevelByComp[c.Key] = LevelFor(score)
		res.RadarData = append(res.RadarData, RadarPoint{
			Subject:  c.Label,
			A:        score,
			FullMark: MaxScore,
		})
		res.TotalScore += score
	}

	// Bands are defined on the 0..25 single-competency scale, so the overall
	// level uses the average of the 10 scores, not the 0..250 total.
	res.OverallLevel = LevelFor(res.TotalScore / len(competencies))
	return res
}

// correctionFactor sums the five correction items and maps the result to the
// bias offset. Bands are inclusive >= checks in descending order.
func correctionFactor(answers AnswerMap) int {
	base := 0
	for _, item := range CorrectionItems {
		base += answers[item]
	}
	switch {
	case base >= 20:
		return 7
	case base >= 15:
		return 5
	case base >= 10:
		return 3
	default:
		return 0
	}
}

// LevelFor bands a 0..25 scale score: <11 Bajo, 11..18 Promedio, >18 Alto.
func LevelFor(score int) string {
	switch {
	case score < 11:
		return LevelBajo
	case score <= 18:
		return LevelPromedio
	default:
		return LevelAlto
	}
}

// Complete reports whether every question has an answer. Final scoring is
// gated behind this check so a preview can never leak into a persisted report.
func Complete(answers AnswerMap) bool {
	for id := 1; id <= TotalQuestions; id++ {
		if _, ok := answers[id]; !ok {
			return false
		}
	}
	return true
}

func (c Competency) isReverse(item int) bool {
	for _, r := range c.Reverse {
		if r == item {
			return true
		}
	}
	return false
}
