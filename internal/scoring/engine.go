package scoring

import "math"

// Factors is the eight-part compatibility breakdown. Each value is an
// integer in [0, 100].
type Factors struct {
	NameHarmony          int `json:"nameHarmony"`
	NumerologyMatch      int `json:"numerologyMatch"`
	ZodiacCompatibility  int `json:"zodiacCompatibility"`
	PersonalityAlignment int `json:"personalityAlignment"`
	CommunicationStyle   int `json:"communicationStyle"`
	EmotionalConnection  int `json:"emotionalConnection"`
	LifestyleMatch       int `json:"lifestyleMatch"`
	LongTermPotential    int `json:"longTermPotential"`
}

// Timeline is the three-stage relationship narrative.
type Timeline struct {
	ShortTerm  string `json:"shortTerm"`
	MediumTerm string `json:"mediumTerm"`
	LongTerm   string `json:"longTerm"`
}

// Analysis is the qualitative reading derived from the factor breakdown.
type Analysis struct {
	Strengths  []string `json:"strengths"`
	Challenges []string `json:"challenges"`
	Advice     []string `json:"advice"`
	Timeline   Timeline `json:"timeline"`
}

// Result is a completed compatibility computation.
type Result struct {
	Score    int      `json:"score"`
	Message  string   `json:"message"`
	Factors  Factors  `json:"factors"`
	Analysis Analysis `json:"analysis"`
}

// Input names a pair to score. Zodiac signs are optional; an empty string
// means absent. Callers validate that both names are non-blank.
type Input struct {
	Name1       string
	Name2       string
	ZodiacSign1 string
	ZodiacSign2 string
}

// Fixed aggregation weights, summing to 1.00.
const (
	weightNameHarmony          = 0.15
	weightNumerologyMatch      = 0.15
	weightZodiacCompatibility  = 0.10
	weightPersonalityAlignment = 0.20
	weightCommunicationStyle   = 0.15
	weightEmotionalConnection  = 0.15
	weightLifestyleMatch       = 0.05
	weightLongTermPotential    = 0.05
)

// Engine combines the deterministic scorers with randomized soft factors
// into a single 0-100 compatibility score.
type Engine struct {
	rand Source
}

// NewEngine creates a scoring engine backed by the given random source.
func NewEngine(src Source) *Engine {
	return &Engine{rand: src}
}

// Compute produces the full compatibility result for a pair of names.
func (e *Engine) Compute(in Input) Result {
	factors := Factors{
		NameHarmony:         NameHarmonyScore(in.Name1, in.Name2),
		NumerologyMatch:     NumerologyScore(in.Name1, in.Name2),
		ZodiacCompatibility: ZodiacScore(in.ZodiacSign1, in.ZodiacSign2),

		// Soft factors: uniform integers within fixed inclusive ranges.
		PersonalityAlignment: e.rand.Intn(30) + 70, // [70, 99]
		CommunicationStyle:   e.rand.Intn(25) + 70, // [70, 94]
		EmotionalConnection:  e.rand.Intn(35) + 65, // [65, 99]
		LifestyleMatch:       e.rand.Intn(40) + 60, // [60, 99]
		LongTermPotential:    e.rand.Intn(30) + 70, // [70, 99]
	}

	score := int(math.Round(
		float64(factors.NameHarmony)*weightNameHarmony +
			float64(factors.NumerologyMatch)*weightNumerologyMatch +
			float64(factors.ZodiacCompatibility)*weightZodiacCompatibility +
			float64(factors.PersonalityAlignment)*weightPersonalityAlignment +
			float64(factors.CommunicationStyle)*weightCommunicationStyle +
			float64(factors.EmotionalConnection)*weightEmotionalConnection +
			float64(factors.LifestyleMatch)*weightLifestyleMatch +
			float64(factors.LongTermPotential)*weightLongTermPotential,
	))

	return Result{
		Score:    score,
		Message:  messageForScore(score),
		Factors:  factors,
		Analysis: analyze(factors),
	}
}

// messageForScore classifies the aggregate score into one of five tiers.
func messageForScore(score int) string {
	switch {
	case score >= 90:
		return "Absolutely perfect match! You're destined to be together! 💕✨"
	case score >= 80:
		return "Amazing compatibility! This is true love material! 💖"
	case score >= 70:
		return "Great potential for a beautiful relationship! 💘"
	case score >= 60:
		return "Good foundation - nurture this connection! 💗"
	default:
		return "Every relationship has potential with effort and understanding! 💝"
	}
}

// analyze derives strengths, challenges, advice and a timeline narrative
// from factor thresholds.
func analyze(f Factors) Analysis {
	strengths := []string{}
	if f.NameHarmony > 80 {
		strengths = append(strengths, "Your names create beautiful harmony together")
	}
	if f.NumerologyMatch > 85 {
		strengths = append(strengths, "Strong numerological connection")
	}
	if f.EmotionalConnection > 80 {
		strengths = append(strengths, "Deep emotional understanding")
	}
	if f.CommunicationStyle > 85 {
		strengths = append(strengths, "Excellent communication potential")
	}

	challenges := []string{}
	if f.LifestyleMatch < 60 {
		challenges = append(challenges, "May need to work on lifestyle compatibility")
	}
	if f.PersonalityAlignment < 65 {
		challenges = append(challenges, "Different personality types - can be complementary")
	}

	timeline := Timeline{
		ShortTerm:  "Growing connection",
		MediumTerm: "Learning to communicate",
		LongTerm:   "Requires mutual effort",
	}
	if f.EmotionalConnection > 75 {
		timeline.ShortTerm = "Strong initial attraction"
	}
	if f.CommunicationStyle > 70 {
		timeline.MediumTerm = "Deepening understanding"
	}
	if f.LongTermPotential > 80 {
		timeline.LongTerm = "Excellent long-term potential"
	}

	return Analysis{
		Strengths:  strengths,
		Challenges: challenges,
		Advice: []string{
			"Focus on open communication",
			"Embrace your differences as strengths",
			"Build shared experiences together",
			"Support each other's individual growth",
		},
		Timeline: timeline,
	}
}
