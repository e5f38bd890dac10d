package habitstats

// Streak milestone thresholds, lowest first. Monotonic: earning a medal
// implies every lower-threshold medal is also earned.
var milestones = []struct {
	Name      string
	Threshold int
}{
	{"First Step", 1},
	{"Bronze Warrior", 7},
	{"Silver Champion", 30},
	{"Gold Legend", 90},
	{"Diamond Elite", 180},
	{"Platinum Master", 365},
}

type Medal struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"` // streak days required
	Earned    bool   `json:"earned"`
}

type Badge struct {
	Name   string `json:"name"`
	Earned bool   `json:"earned"`
}

// NextMedal points at the lowest-threshold unearned streak milestone.
type NextMedal struct {
	Name          string `json:"name"`
	Threshold     int    `json:"threshold"`
	DaysRemaining int    `json:"daysRemaining"`
}

// Achievements is the full unlock classification for one user. It is derived
// on every call and never stored.
type Achievements struct {
	Medals    []Medal    `json:"medals"`
	Badges    []Badge    `json:"badges"`
	NextMedal *NextMedal `json:"nextMedal,omitempty"` // nil once all are earned
}

// Evaluate classifies each milestone and badge as earned or locked from the
// current streak and 30-day consistency percentage.
func Evaluate(streak int, consistency30 float64) *Achievements {
	medals := make([]Medal, 0, len(milestones))
	var next *NextMedal
	for _, m := range milestones {
		earned := streak >= m.Threshold
		medals = append(medals, Medal{Name: m.Name, Threshold: m.Threshold, Earned: earned})
		if !earned && next == nil {
			next = &NextMedal{
				Name:          m.Name,
				Threshold:     m.Threshold,
				DaysRemaining: m.Threshold - streak,
			}
		}
	}

	badges := []Badge{
		{Name: "Getting Started", Earned: streak >= 3},
		{Name: "On Fire", Earned: streak >= 7},
		{Name: "Star Performer", Earned: consistency30 >= 90},
		{Name: "Perfect Month", Earned: consistency30 >= 100},
	}

	return &Achievements{Medals: medals, Badges: badges, NextMedal: next}
}
