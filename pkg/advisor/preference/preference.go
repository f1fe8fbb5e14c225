package preference

// Mode selects which questionnaire the user filled out. Casual users pick
// lifestyle goals; expert users pick technical specs directly. The two payloads
// never mix: Goals is meaningful only in casual mode, Expert only in expert mode.
type Mode string

const (
	ModeCasual Mode = "CASUAL"
	ModeExpert Mode = "EXPERT"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type ProcessorTier string

const (
	ProcessorBasic    ProcessorTier = "BASIC"
	ProcessorBalanced ProcessorTier = "BALANCED"
	ProcessorFlagship ProcessorTier = "FLAGSHIP"
)

type GamingTier string

const (
	GamingCasual GamingTier = "CASUAL"
	GamingMid    GamingTier = "MID"
	GamingHeavy  GamingTier = "HEAVY"
)

type DisplayType string

const (
	DisplayLCD         DisplayType = "LCD"
	DisplayAMOLED      DisplayType = "AMOLED"
	DisplayHighRefresh DisplayType = "HIGH_REFRESH"
)

type AudioType string

const (
	AudioNormal AudioType = "NORMAL"
	AudioStereo AudioType = "STEREO"
)

type BuildMaterial string

const (
	BuildPlastic BuildMaterial = "PLASTIC"
	BuildMetal   BuildMaterial = "METAL"
	BuildGlass   BuildMaterial = "GLASS"
)

// Goal is a casual-mode lifestyle tag. Each goal maps onto the same technical
// dimensions expert mode exposes, so casual and expert submissions stay
// comparable in quality.
type Goal string

const (
	GoalPhotography Goal = "PHOTOGRAPHY"
	GoalGaming      Goal = "GAMING"
	GoalWork        Goal = "WORK"
	GoalCasual      Goal = "CASUAL"
	GoalBattery     Goal = "BATTERY"
)

// Budget carries the region-aware budget. When Unlimited is true, Max and
// Currency must be ignored downstream, not merely de-emphasized.
type Budget struct {
	Max       int
	Currency  string
	Country   string
	Unlimited bool
}

// ExpertSpecs holds the technical questionnaire answers.
type ExpertSpecs struct {
	Processor     ProcessorTier
	Gaming        GamingTier
	MinRAMStorage string
	Require5G     bool
	Display       DisplayType
	Audio         AudioType
	Build         BuildMaterial
}

// Preferences is the normalized preference record handed to the prompt
// compiler. It is a tagged variant: Expert is non-nil iff Mode is ModeExpert,
// Goals is populated only when Mode is ModeCasual.
type Preferences struct {
	Mode   Mode
	Budget Budget

	// Brands is a canonical deduplicated set. Empty means "any brand";
	// there is no separate sentinel for "explicitly any".
	Brands []string

	CameraPriority    Priority
	BatteryPriority   Priority
	UpdatesPriority   Priority
	PrioritizePremium bool

	Expert *ExpertSpecs
	Goals  []Goal
}

// EffectiveGaming resolves the gaming tier across both modes: expert mode
// reads the explicit tier, casual mode treats a Gaming goal as Heavy.
func (p Preferences) EffectiveGaming() GamingTier {
	switch p.Mode {
	case ModeExpert:
		if p.Expert != nil {
			return p.Expert.Gaming
		}
	case ModeCasual:
		if p.HasGoal(GoalGaming) {
			return GamingHeavy
		}
	}
	return GamingCasual
}

func (p Preferences) HasGoal(g Goal) bool {
	for _, goal := range p.Goals {
		if goal == g {
			return true
		}
	}
	return false
}
