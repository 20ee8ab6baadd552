package ceps

import (
	"reflect"
	"testing"
)

func uniformAnswers(v int) AnswerMap {
	a := make(AnswerMap, TotalQuestions)
	for id := 1; id <= TotalQuestions; id++ {
		a[id] = v
	}
	return a
}

func TestComputeScores_AllNeutral(t *testing.T) {
	res := ComputeScores(uniformAnswers(3))

	if res.Correction != 5 {
		t.Fatalf("correction = %d, want 5 (base 15)", res.Correction)
	}
	// Competencies with no reverse items: 6 + 5*3 = 21, minus correction.
	for _, key := range []string{KeyIniciativa, KeyPersistencia, KeyCumplimiento, KeyCalidad} {
		if got := res.Scores[key]; got != 16 {
			t.Errorf("%s = %d, want 16", key, got)
		}
		if lvl := res.LevelByComp[key]; lvl != LevelPromedio {
			t.Errorf("%s level = %q, want Promedio", key, lvl)
		}
	}
	// One reverse item: 6 - 3 + 3+3+3+3 = 15, minus 5 = 10.
	for _, key := range []string{KeyMetas, KeyInformacion, KeyPlanificacion, KeyRedes, KeyAutoconfianza} {
		if got := res.Scores[key]; got != 10 {
			t.Errorf("%s = %d, want 10", key, got)
		}
		if lvl := res.LevelByComp[key]; lvl != LevelBajo {
			t.Errorf("%s level = %q, want Bajo", key, lvl)
		}
	}
	// Two reverse items: 6 - 3 + 3 - 3 + 3 + 3 = 9, minus 5 = 4.
	if got := res.Scores[KeyRiesgos]; got != 4 {
		t.Errorf("riesgos = %d, want 4", got)
	}
	if lvl := res.LevelByComp[KeyRiesgos]; lvl != LevelBajo {
		t.Errorf("riesgos level = %q, want Bajo", lvl)
	}
}

func TestComputeScores_AllMax(t *testing.T) {
	res := ComputeScores(uniformAnswers(5))

	if res.Correction != 7 {
		t.Fatalf("correction = %d, want 7 (base 25)", res.Correction)
	}
	// No reverse: 6 + 25 = 31, minus 7 = 24.
	if got := res.Scores[KeyIniciativa]; got != 24 {
		t.Errorf("iniciativa = %d, want 24", got)
	}
	if lvl := res.LevelByComp[KeyIniciativa]; lvl != LevelAlto {
		t.Errorf("iniciativa level = %q, want Alto", lvl)
	}
	// Two reverse items do not max out under all-5 answers:
	// 6 - 5 + 5 - 5 + 5 + 5 = 11, minus 7 = 4.
	if got := res.Scores[KeyRiesgos]; got != 4 {
		t.Errorf("riesgos = %d, want 4", got)
	}
	if lvl := res.LevelByComp[KeyRiesgos]; lvl != LevelBajo {
		t.Errorf("riesgos level = %q, want Bajo", lvl)
	}
}

func TestComputeScores_AllMin(t *testing.T) {
	res := ComputeScores(uniformAnswers(1))

	if res.Correction != 0 {
		t.Fatalf("correction = %d, want 0 (base 5)", res.Correction)
	}
	// No reverse: 6 + 5 = 11, boundary score exactly at the Promedio floor.
	if got := res.Scores[KeyIniciativa]; got != 11 {
		t.Errorf("iniciativa = %d, want 11", got)
	}
	if lvl := res.LevelByComp[KeyIniciativa]; lvl != LevelPromedio {
		t.Errorf("iniciativa level = %q, want Promedio", lvl)
	}
	// Riesgos: 6 - 1 + 1 - 1 + 1 + 1 = 7.
	if got := res.Scores[KeyRiesgos]; got != 7 {
		t.Errorf("riesgos = %d, want 7", got)
	}
}

func TestComputeScores_Deterministic(t *testing.T) {
	a := uniformAnswers(4)
	r1 := ComputeScores(a)
	r2 := ComputeScores(a)
	if !reflect.DeepEqual(r1, r2) {
		t.Fatalf("two computations over the same answers differ:\n%+v\n%+v", r1, r2)
	}
}

func TestComputeScores_SumConsistency(t *testing.T) {
	for _, v := range []int{1, 2, 3, 4, 5} {
		res := ComputeScores(uniformAnswers(v))
		sum := 0
		for _, s := range res.Scores {
			sum += s
		}
		if sum != res.TotalScore {
			t.Errorf("v=%d: total %d != sum of scores %d", v, res.TotalScore, sum)
		}
	}
}

func TestComputeScores_FloorAtZero(t *testing.T) {
	// Max out only the reverse and correction items: raw scores go deeply
	// negative and must clamp at 0.
	a := AnswerMap{}
	for _, c := range Competencies() {
		for _, item := range c.Reverse {
			a[item] = 5
		}
	}
	for _, item := range CorrectionItems {
		a[item] = 5
	}
	res := ComputeScores(a)
	for key, s := range res.Scores {
		if s < 0 {
			t.Errorf("%s = %d, want >= 0", key, s)
		}
	}
	if res.Scores[KeyRiesgos] != 0 {
		t.Errorf("riesgos = %d, want clamped 0", res.Scores[KeyRiesgos])
	}
}

func TestComputeScores_PartialMapIsPreview(t *testing.T) {
	// Missing answers default to 0; the transform must not panic or skew
	// other competencies.
	a := AnswerMap{1: 5, 12: 5, 23: 5, 34: 5, 45: 5} // iniciativa only
	res := ComputeScores(a)
	if res.Correction != 0 {
		t.Fatalf("correction = %d, want 0 with no correction items answered", res.Correction)
	}
	if got := res.Scores[KeyIniciativa]; got != 31 {
		t.Errorf("iniciativa = %d, want 31 (6+25, correction 0)", got)
	}
	if got := res.Scores[KeyPersistencia]; got != 6 {
		t.Errorf("persistencia = %d, want bare base 6", got)
	}
	if Complete(a) {
		t.Fatal("partial map must not report complete")
	}
}

func TestComputeScores_RadarOrderAndFullMark(t *testing.T) {
	res := ComputeScores(uniformAnswers(3))
	comps := Competencies()
	if len(res.RadarData) != len(comps) {
		t.Fatalf("radar entries = %d, want %d", len(res.RadarData), len(comps))
	}
	for i, p := range res.RadarData {
		if p.Subject != comps[i].Label {
			t.Errorf("radar[%d].Subject = %q, want %q", i, p.Subject, comps[i].Label)
		}
		if p.FullMark != MaxScore {
			t.Errorf("radar[%d].FullMark = %d, want %d", i, p.FullMark, MaxScore)
		}
		if p.A != res.Scores[comps[i].Key] {
			t.Errorf("radar[%d].A = %d, want %d", i, p.A, res.Scores[comps[i].Key])
		}
	}
}

func TestLevelFor_BandBoundaries(t *testing.T) {
	for score := 0; score <= MaxScore; score++ {
		var want string
		switch {
		case score < 11:
			want = LevelBajo
		case score <= 18:
			want = LevelPromedio
		default:
			want = LevelAlto
		}
		if got := LevelFor(score); got != want {
			t.Errorf("LevelFor(%d) = %q, want %q", score, got, want)
		}
	}
}

func TestCorrectionFactor_Bands(t *testing.T) {
	// Drive the correction-item sum through every reachable base value.
	cases := []struct {
		base int
		want int
	}{
		{0, 0}, {5, 0}, {9, 0},
		{10, 3}, {12, 3}, {14, 3},
		{15, 5}, {17, 5}, {19, 5},
		{20, 7}, {23, 7}, {25, 7},
	}
	for _, tc := range cases {
		a := AnswerMap{}
		remaining := tc.base
		for _, item := range CorrectionItems {
			v := remaining
			if v > 5 {
				v = 5
			}
			if v > 0 {
				a[item] = v
			}
			remaining -= v
		}
		if got := ComputeScores(a).Correction; got != tc.want {
			t.Errorf("base %d: correction = %d, want %d", tc.base, got, tc.want)
		}
	}
}

func TestComplete(t *testing.T) {
	a := uniformAnswers(2)
	if !Complete(a) {
		t.Fatal("full map must report complete")
	}
	delete(a, 37)
	if Complete(a) {
		t.Fatal("map missing one answer must not report complete")
	}
}
