package prompt

import (
	"fmt"
	"strings"

	"phonefinder-be/pkg/advisor/preference"
)

// Compile turns a normalized preference record into the instruction text and
// response schema for one recommendation request. It is pure and deterministic:
// the same preferences always compile to the same instruction.
func Compile(prefs preference.Preferences) (string, *Schema) {
	b := &builder{prefs: prefs}
	return b.build(), ResponseSchema()
}

type builder struct {
	prefs preference.Preferences
}

func (b *builder) build() string {
	var prompt strings.Builder

	b.writeRole(&prompt)
	b.writeBudget(&prompt)
	b.writeSharedPriorities(&prompt)

	switch b.prefs.Mode {
	case preference.ModeCasual:
		b.writeGoals(&prompt)
	default:
		b.writeTechnicalSpecs(&prompt)
	}

	b.writeDirectives(&prompt)
	b.writeOutputRequirements(&prompt)

	return prompt.String()
}

func (b *builder) writeRole(prompt *strings.Builder) {
	prompt.WriteString("As a world-class smartphone consultant, suggest 3-5 best mobile phones ")
	prompt.WriteString("(models from 2023-2025) for a user with these detailed preferences.\n\n")
}

func (b *builder) writeBudget(prompt *strings.Builder) {
	budget := b.prefs.Budget
	prompt.WriteString("BUDGET & REGION:\n")
	if budget.Unlimited {
		// No numeric budget may leak into the instruction here: unlimited
		// replaces the constraint entirely.
		prompt.WriteString("- Budget: UNLIMITED. Recommend only top-tier flagship devices regardless of price.\n")
	} else {
		fmt.Fprintf(prompt, "- Maximum Budget: %d %s. Stay within this budget.\n", budget.Max, budget.Currency)
	}
	fmt.Fprintf(prompt, "- Country / Region: %s\n", budget.Country)

	if len(b.prefs.Brands) > 0 {
		fmt.Fprintf(prompt, "- Brand Preference: %s\n", strings.Join(b.prefs.Brands, ", "))
	} else {
		prompt.WriteString("- Brand Preference: No specific preference\n")
	}
	prompt.WriteString("\n")
}

func (b *builder) writeSharedPriorities(prompt *strings.Builder) {
	prompt.WriteString("CORE PRIORITIES:\n")
	fmt.Fprintf(prompt, "- Camera Importance: %s\n", b.prefs.CameraPriority)
	fmt.Fprintf(prompt, "- Battery/Charging Needs: %s\n", b.prefs.BatteryPriority)
	fmt.Fprintf(prompt, "- Software Updates Importance: %s\n", b.prefs.UpdatesPriority)
	prompt.WriteString("\n")
}

func (b *builder) writeTechnicalSpecs(prompt *strings.Builder) {
	specs := b.prefs.Expert
	if specs == nil {
		return
	}
	prompt.WriteString("TECHNICAL SPECS:\n")
	fmt.Fprintf(prompt, "- Processor Performance: %s\n", specs.Processor)
	fmt.Fprintf(prompt, "- Gaming Needs: %s\n", specs.Gaming)
	fmt.Fprintf(prompt, "- Minimum RAM/Storage: %s\n", specs.MinRAMStorage)
	fmt.Fprintf(prompt, "- 5G Support Required: %s\n", yesNo(specs.Require5G))
	fmt.Fprintf(prompt, "- Preferred Display: %s\n", specs.Display)
	fmt.Fprintf(prompt, "- Audio Quality: %s\n", specs.Audio)
	fmt.Fprintf(prompt, "- Preferred Build: %s\n", specs.Build)
	prompt.WriteString("\n")
}

// goalTranslations spells out how each lifestyle goal maps to the technical
// dimensions expert mode exposes, so casual submissions carry the same
// technical context as expert ones.
var goalTranslations = map[preference.Goal]string{
	preference.GoalPhotography: "Photography: prioritize imaging sensor size, optics, and ISP quality",
	preference.GoalGaming:      "Gaming: prioritize sustained SoC performance, GPU capability, and cooling",
	preference.GoalWork:        "Work: prioritize software update longevity, reliability, and multitasking memory",
	preference.GoalCasual:      "Casual: prioritize balanced everyday performance and value",
	preference.GoalBattery:     "Battery: prioritize battery capacity and fast-charging speed",
}

// Fixed order keeps compilation deterministic regardless of map iteration.
var goalOrder = []preference.Goal{
	preference.GoalPhotography,
	preference.GoalGaming,
	preference.GoalWork,
	preference.GoalCasual,
	preference.GoalBattery,
}

func (b *builder) writeGoals(prompt *strings.Builder) {
	if len(b.prefs.Goals) == 0 {
		return
	}
	prompt.WriteString("LIFESTYLE GOALS:\n")
	prompt.WriteString("The user chose these goals. Translate each goal into the relevant technical dimension below; do not ignore technical context:\n")
	for _, goal := range goalOrder {
		if !b.prefs.HasGoal(goal) {
			continue
		}
		fmt.Fprintf(prompt, "- %s\n", goalTranslations[goal])
	}
	prompt.WriteString("\n")
}

func (b *builder) writeDirectives(prompt *strings.Builder) {
	budget := b.prefs.Budget

	if b.prefs.PrioritizePremium || budget.Unlimited {
		prompt.WriteString("PREMIUM DIRECTIVE: Bias towards maximum-capability devices over value-for-money picks.")
		if !budget.Unlimited {
			// Premium is a soft ranking bias only; an explicit budget still binds.
			prompt.WriteString(" The stated maximum budget still applies.")
		}
		prompt.WriteString("\n\n")
	}

	if b.prefs.EffectiveGaming() == preference.GamingHeavy {
		prompt.WriteString("THERMAL DIRECTIVE: Every recommended device must have demonstrable sustained-performance thermal management ")
		prompt.WriteString("(vapor chamber, active cooling, or graphene sheets). Do not recommend phones that throttle under load.\n\n")
	}
}

func (b *builder) writeOutputRequirements(prompt *strings.Builder) {
	budget := b.prefs.Budget
	prompt.WriteString("OUTPUT REQUIREMENTS:\n")
	if budget.Unlimited {
		// Currency is part of the budget constraint and is ignored alongside
		// it; pricing stays localized through the region alone.
		fmt.Fprintf(prompt, "- Give priceEstimate as localized pricing in the local currency of %s.\n", budget.Country)
	} else {
		fmt.Fprintf(prompt, "- Give priceEstimate as localized pricing in %s for %s.\n", budget.Currency, budget.Country)
	}
	prompt.WriteString("- Give a numeric matchScore from 0 to 100 for each device.\n")
	prompt.WriteString("- Give at least 3 pros and 2-3 cons per device.\n")
	prompt.WriteString("- Give a short bestUseCase label per device.\n")
	fmt.Fprintf(prompt, "- List plausible retailers (name and url) where the device is available in %s.\n", budget.Country)
	prompt.WriteString("- Analyze these constraints and provide specific reasoning for how each recommendation satisfies them.\n")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
