package ceps

import "testing"

// scoresWith builds a full score map at base and applies overrides.
func scoresWith(base int, overrides map[string]int) map[string]int {
	m := make(map[string]int, len(competencies))
	for _, c := range competencies {
		m[c.Key] = base
	}
	for k, v := range overrides {
		m[k] = v
	}
	return m
}

func TestOverallProfile(t *testing.T) {
	tests := []struct {
		name   string
		scores map[string]int
		want   string
	}{
		{
			name:   "leader",
			scores: scoresWith(12, map[string]int{KeyIniciativa: 19, KeyPersistencia: 20}),
			want:   ProfileLeader,
		},
		{
			name:   "perfectionist",
			scores: scoresWith(12, map[string]int{KeyCalidad: 19, KeyCumplimiento: 19}),
			want:   ProfilePerfectionist,
		},
		{
			name:   "risktaker needs average too",
			scores: scoresWith(15, map[string]int{KeyRiesgos: 19}),
			want:   ProfileRiskTaker,
		},
		{
			name:   "high risk but low average falls through",
			scores: scoresWith(8, map[string]int{KeyRiesgos: 19}),
			want:   ProfileDeveloping,
		},
		{
			name:   "networker",
			scores: scoresWith(12, map[string]int{KeyRedes: 19}),
			want:   ProfileNetworker,
		},
		{
			name:   "balanced tolerates one weak competency",
			scores: scoresWith(15, map[string]int{KeyRiesgos: 10}),
			want:   ProfileBalanced,
		},
		{
			name:   "two weak competencies are not balanced",
			scores: scoresWith(16, map[string]int{KeyRiesgos: 9, KeyRedes: 10}),
			want:   ProfileDeveloping,
		},
		{
			name:   "developing",
			scores: scoresWith(8, nil),
			want:   ProfileDeveloping,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OverallProfile(tc.scores); got != tc.want {
				t.Fatalf("OverallProfile = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOverallProfile_RuleOrderBreaksTies(t *testing.T) {
	// Satisfies both the leader and perfectionist conditions; the ordered
	// decision list must report leader.
	scores := scoresWith(12, map[string]int{
		KeyIniciativa:   20,
		KeyPersistencia: 20,
		KeyCalidad:      20,
		KeyCumplimiento: 20,
	})
	if got := OverallProfile(scores); got != ProfileLeader {
		t.Fatalf("OverallProfile = %q, want leader (first rule wins)", got)
	}
}

func TestCompetencyRecommendation_CoversAllPairs(t *testing.T) {
	for _, c := range Competencies() {
		for _, level := range []string{LevelBajo, LevelPromedio, LevelAlto} {
			text := CompetencyRecommendation(c.Key, level)
			if text == "" {
				t.Errorf("empty recommendation for (%s, %s)", c.Key, level)
			}
		}
	}
}

func TestCompetencyRecommendation_Fallback(t *testing.T) {
	generic := CompetencyRecommendation("unknown", LevelBajo)
	if generic == "" {
		t.Fatal("fallback must return guidance text")
	}
	if generic == CompetencyRecommendation(KeyRedes, LevelBajo) {
		t.Fatal("fallback should not collide with a real table entry")
	}
}

func TestProfileDescription(t *testing.T) {
	for _, p := range []string{ProfileLeader, ProfilePerfectionist, ProfileRiskTaker,
		ProfileNetworker, ProfileBalanced, ProfileDeveloping} {
		if ProfileDescription(p) == "" {
			t.Errorf("empty description for %s", p)
		}
	}
	if ProfileDescription("bogus") != ProfileDescription(ProfileDeveloping) {
		t.Error("unknown profile should fall back to developing")
	}
}
