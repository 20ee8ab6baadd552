package ceps

import "testing"

func TestCatalog_QuestionIDs(t *testing.T) {
	qs := Questions()
	if len(qs) != TotalQuestions {
		t.Fatalf("catalog has %d questions, want %d", len(qs), TotalQuestions)
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Errorf("question at index %d has id %d", i, q.ID)
		}
		if q.Text == "" {
			t.Errorf("question %d has empty text", q.ID)
		}
	}
}

func TestCatalog_ItemAssignmentCoversEveryQuestionOnce(t *testing.T) {
	assigned := map[int]string{}
	for _, c := range Competencies() {
		if len(c.Items) != 5 {
			t.Fatalf("%s has %d items", c.Key, len(c.Items))
		}
		for _, item := range c.Items {
			if prev, dup := assigned[item]; dup {
				t.Errorf("item %d assigned to both %s and %s", item, prev, c.Key)
			}
			assigned[item] = c.Key
		}
		for _, r := range c.Reverse {
			if assigned[r] != c.Key {
				t.Errorf("%s reverse item %d not among its items", c.Key, r)
			}
		}
	}
	for _, item := range CorrectionItems {
		if owner, dup := assigned[item]; dup {
			t.Errorf("correction item %d also assigned to %s", item, owner)
		}
		assigned[item] = "correction"
	}
	for id := 1; id <= TotalQuestions; id++ {
		if _, ok := assigned[id]; !ok {
			t.Errorf("question %d belongs to no competency or correction set", id)
		}
	}
}

func TestCatalog_Lookups(t *testing.T) {
	if _, ok := QuestionByID(0); ok {
		t.Error("QuestionByID(0) should miss")
	}
	if _, ok := QuestionByID(TotalQuestions + 1); ok {
		t.Error("QuestionByID(56) should miss")
	}
	q, ok := QuestionByID(55)
	if !ok || q.ID != 55 {
		t.Errorf("QuestionByID(55) = %+v, %v", q, ok)
	}
	if _, ok := CompetencyByKey(KeyRiesgos); !ok {
		t.Error("CompetencyByKey(riesgos) should hit")
	}
	if _, ok := CompetencyByKey("nope"); ok {
		t.Error("CompetencyByKey(nope) should miss")
	}
}
