package preference

import "strconv"

// CountryCurrency drives the automatic currency default when the user picks a
// country. The default only applies on a country change; an explicit currency
// choice made afterwards wins until the next country change (last-write-wins
// per field).
var CountryCurrency = map[string]string{
	"United States":  "USD",
	"India":          "INR",
	"United Kingdom": "GBP",
	"Germany":        "EUR",
	"France":         "EUR",
	"Canada":         "CAD",
	"Australia":      "AUD",
	"Japan":          "JPY",
	"Other":          "USD",
}

// AnyBrand is the UI sentinel for "no brand preference". It clears the set
// rather than being stored in it.
const AnyBrand = "Any"

// FormState is the mutable questionnaire state owned by the UI layer. Discrete
// user actions mutate it through the Set*/Toggle* methods; Normalize snapshots
// it into an immutable Preferences record at submit time.
type FormState struct {
	Mode Mode

	Country   string
	Currency  string
	MaxBudget int
	Unlimited bool

	PrioritizePremium bool
	Brands            []string

	CameraPriority  Priority
	BatteryPriority Priority
	UpdatesPriority Priority

	Expert ExpertSpecs
	Goals  []Goal
}

// NewFormState mirrors the questionnaire defaults of the web UI.
func NewFormState() *FormState {
	return &FormState{
		Mode:            ModeExpert,
		Country:         "United States",
		Currency:        "USD",
		MaxBudget:       1000,
		CameraPriority:  PriorityMedium,
		BatteryPriority: PriorityMedium,
		UpdatesPriority: PriorityMedium,
		Expert: ExpertSpecs{
			Processor:     ProcessorBalanced,
			Gaming:        GamingMid,
			MinRAMStorage: "8GB / 128GB",
			Require5G:     true,
			Display:       DisplayAMOLED,
			Audio:         AudioStereo,
			Build:         BuildGlass,
		},
	}
}

// SetCountry changes the country and re-applies the currency default for it.
// Any earlier explicit currency override is superseded by the newer action.
func (f *FormState) SetCountry(country string) {
	f.Country = country
	if currency, ok := CountryCurrency[country]; ok {
		f.Currency = currency
	}
}

// SetCurrency records an explicit currency choice.
func (f *FormState) SetCurrency(currency string) {
	f.Currency = currency
}

// SetMaxBudget parses a raw numeric input. Non-numeric or non-positive input
// leaves the previous valid value in place so no invalid number flows
// downstream.
func (f *FormState) SetMaxBudget(raw string) {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return
	}
	f.MaxBudget = value
}

// ToggleBrand adds or removes a brand from the selection. The AnyBrand
// sentinel clears the whole set.
func (f *FormState) ToggleBrand(brand string) {
	if brand == AnyBrand {
		f.Brands = nil
		return
	}
	for i, b := range f.Brands {
		if b == brand {
			f.Brands = append(f.Brands[:i], f.Brands[i+1:]...)
			return
		}
	}
	f.Brands = append(f.Brands, brand)
}

// ToggleGoal adds or removes a casual-mode lifestyle goal.
func (f *FormState) ToggleGoal(goal Goal) {
	for i, g := range f.Goals {
		if g == goal {
			f.Goals = append(f.Goals[:i], f.Goals[i+1:]...)
			return
		}
	}
	f.Goals = append(f.Goals, goal)
}

// Normalize snapshots the form into a Preferences record. Brands are
// deduplicated and stripped of the AnyBrand sentinel; only the payload
// matching the active mode is carried over.
func (f *FormState) Normalize() Preferences {
	prefs := Preferences{
		Mode: f.Mode,
		Budget: Budget{
			Max:       f.MaxBudget,
			Currency:  f.Currency,
			Country:   f.Country,
			Unlimited: f.Unlimited,
		},
		Brands:            canonicalBrands(f.Brands),
		CameraPriority:    f.CameraPriority,
		BatteryPriority:   f.BatteryPriority,
		UpdatesPriority:   f.UpdatesPriority,
		PrioritizePremium: f.PrioritizePremium,
	}

	switch f.Mode {
	case ModeExpert:
		specs := f.Expert
		prefs.Expert = &specs
	case ModeCasual:
		prefs.Goals = append([]Goal(nil), f.Goals...)
	}

	return prefs
}

func canonicalBrands(brands []string) []string {
	seen := make(map[string]bool, len(brands))
	out := make([]string, 0, len(brands))
	for _, b := range brands {
		if b == "" || b == AnyBrand || seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	return out
}
