package dto

import (
	"time"

	"phonefinder-be/internal/entity"
)

type BudgetDTO struct {
	Max       int    `json:"max" validate:"min=0"`
	Currency  string `json:"currency"`
	Country   string `json:"country"`
	Unlimited bool   `json:"unlimited"`
}

type ExpertSpecsDTO struct {
	Processor     string `json:"processor" validate:"omitempty,oneof=BASIC BALANCED FLAGSHIP"`
	Gaming        string `json:"gaming" validate:"omitempty,oneof=CASUAL MID HEAVY"`
	MinRAMStorage string `json:"min_ram_storage"`
	Require5G     bool   `json:"require_5g"`
	Display       string `json:"display" validate:"omitempty,oneof=LCD AMOLED HIGH_REFRESH"`
	Audio         string `json:"audio" validate:"omitempty,oneof=NORMAL STEREO"`
	Build         string `json:"build" validate:"omitempty,oneof=PLASTIC METAL GLASS"`
}

type SubmitPreferencesRequest struct {
	Mode   string    `json:"mode" validate:"required,oneof=CASUAL EXPERT"`
	Budget BudgetDTO `json:"budget"`

	Brands []string `json:"brands"`

	CameraPriority    string `json:"camera_priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	BatteryPriority   string `json:"battery_priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	UpdatesPriority   string `json:"updates_priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	PrioritizePremium bool   `json:"prioritize_premium"`

	Expert *ExpertSpecsDTO `json:"expert,omitempty"`
	Goals  []string        `json:"goals,omitempty" validate:"dive,oneof=PHOTOGRAPHY GAMING WORK CASUAL BATTERY"`
}

type SearchResultResponse struct {
	Recommendations []entity.Recommendation `json:"recommendations"`
	CreatedAt       time.Time               `json:"created_at"`
}
