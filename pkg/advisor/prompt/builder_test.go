package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"phonefinder-be/pkg/advisor/preference"
)

func expertPrefs() preference.Preferences {
	form := preference.NewFormState()
	return form.Normalize()
}

func TestCompileUnlimitedBudget(t *testing.T) {
	form := preference.NewFormState()
	form.Unlimited = true
	prefs := form.Normalize()

	instruction, _ := Compile(prefs)

	assert.Contains(t, instruction, "Budget: UNLIMITED")
	assert.Contains(t, instruction, "PREMIUM DIRECTIVE")
	assert.NotContains(t, instruction, "1000",
		"numeric budget must not leak into an unlimited instruction")
	assert.NotContains(t, instruction, "USD",
		"currency is ignored alongside the budget constraint")
}

func TestCompileBoundedBudget(t *testing.T) {
	instruction, _ := Compile(expertPrefs())

	assert.Contains(t, instruction, "Maximum Budget: 1000 USD")
	assert.NotContains(t, instruction, "UNLIMITED")
}

func TestCompilePremiumWithBoundedBudget(t *testing.T) {
	form := preference.NewFormState()
	form.PrioritizePremium = true
	instruction, _ := Compile(form.Normalize())

	assert.Contains(t, instruction, "PREMIUM DIRECTIVE")
	assert.Contains(t, instruction, "The stated maximum budget still applies.")
}

func TestCompileThermalDirective(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *preference.FormState)
		want   bool
	}{
		{
			name: "expert heavy gaming",
			mutate: func(f *preference.FormState) {
				f.Expert.Gaming = preference.GamingHeavy
			},
			want: true,
		},
		{
			name:   "expert mid gaming",
			mutate: func(f *preference.FormState) {},
			want:   false,
		},
		{
			name: "casual gaming goal",
			mutate: func(f *preference.FormState) {
				f.Mode = preference.ModeCasual
				f.ToggleGoal(preference.GoalGaming)
			},
			want: true,
		},
		{
			name: "casual without gaming goal",
			mutate: func(f *preference.FormState) {
				f.Mode = preference.ModeCasual
				f.ToggleGoal(preference.GoalBattery)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := preference.NewFormState()
			tt.mutate(form)
			instruction, _ := Compile(form.Normalize())

			got := strings.Contains(instruction, "THERMAL DIRECTIVE")
			assert.Equal(t, tt.want, got)
			if tt.want {
				assert.Contains(t, instruction, "vapor chamber, active cooling, or graphene sheets")
			}
		})
	}
}

func TestCompileCasualGoalsTranslated(t *testing.T) {
	form := preference.NewFormState()
	form.Mode = preference.ModeCasual
	form.ToggleGoal(preference.GoalPhotography)
	form.ToggleGoal(preference.GoalBattery)

	instruction, _ := Compile(form.Normalize())

	assert.Contains(t, instruction, "LIFESTYLE GOALS")
	assert.Contains(t, instruction, "imaging sensor size")
	assert.Contains(t, instruction, "fast-charging speed")
	assert.NotContains(t, instruction, "TECHNICAL SPECS",
		"casual submissions omit the expert spec block")
}

func TestCompileExpertSpecsRendered(t *testing.T) {
	instruction, _ := Compile(expertPrefs())

	assert.Contains(t, instruction, "TECHNICAL SPECS")
	assert.Contains(t, instruction, "Minimum RAM/Storage: 8GB / 128GB")
	assert.Contains(t, instruction, "5G Support Required: Yes")
	assert.NotContains(t, instruction, "LIFESTYLE GOALS")
}

func TestCompileFlagshipHeavyScenario(t *testing.T) {
	form := preference.NewFormState()
	form.PrioritizePremium = true
	form.Expert.Processor = preference.ProcessorFlagship
	form.Expert.Gaming = preference.GamingHeavy

	instruction, _ := Compile(form.Normalize())

	assert.Contains(t, instruction, "Maximum Budget: 1000 USD")
	assert.Contains(t, instruction, "THERMAL DIRECTIVE")
	assert.Contains(t, instruction, "The stated maximum budget still applies.")
	assert.NotContains(t, instruction, "UNLIMITED")
}

func TestCompileBrandPreference(t *testing.T) {
	form := preference.NewFormState()
	form.ToggleBrand("Samsung")
	form.ToggleBrand("Google")

	instruction, _ := Compile(form.Normalize())
	assert.Contains(t, instruction, "Brand Preference: Samsung, Google")

	instruction, _ = Compile(expertPrefs())
	assert.Contains(t, instruction, "Brand Preference: No specific preference")
}

func TestCompileDeterministic(t *testing.T) {
	form := preference.NewFormState()
	form.Mode = preference.ModeCasual
	for _, g := range []preference.Goal{
		preference.GoalBattery, preference.GoalWork, preference.GoalGaming,
		preference.GoalPhotography, preference.GoalCasual,
	} {
		form.ToggleGoal(g)
	}
	prefs := form.Normalize()

	first, _ := Compile(prefs)
	for i := 0; i < 20; i++ {
		again, _ := Compile(prefs)
		assert.Equal(t, first, again)
	}
}

func TestResponseSchemaRequiresAllFields(t *testing.T) {
	schema := ResponseSchema()

	assert.Equal(t, []string{"recommendations"}, schema.Required)

	device := schema.Properties["recommendations"].Items
	assert.Equal(t, "OBJECT", device.Type)
	for _, field := range []string{
		"id", "name", "brand", "priceEstimate", "matchScore",
		"whyThisPhone", "pros", "cons", "bestUseCase", "availableRetailers",
	} {
		assert.Contains(t, device.Required, field)
		assert.Contains(t, device.Properties, field)
	}
}
