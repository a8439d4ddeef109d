package domain

import "errors"

// SkinType is the closed set of self-reported skin types for face analysis.
type SkinType string

const (
	SkinDry         SkinType = "Dry"
	SkinOily        SkinType = "Oily"
	SkinCombination SkinType = "Combination"
	SkinNormal      SkinType = "Normal"
	SkinSensitive   SkinType = "Sensitive"
)

var ErrAdvisorUnavailable = errors.New("advisor unavailable")
var ErrMissingAnalysisSubject = errors.New("analysis requires a photo or measurements")

// PaletteColor is a named color swatch with its hex value.
type PaletteColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Outfit is a single outfit recommendation for an occasion.
type Outfit struct {
	Occasion string   `json:"occasion"`
	Items    []string `json:"items"`
	Reason   string   `json:"reason"`
}

// FashionAnalysis is the structured result of a fashion advisory request.
type FashionAnalysis struct {
	BodyShape       string         `json:"bodyShape"`
	Undertone       string         `json:"undertone"`
	Recommendations []string       `json:"recommendations"`
	PowerColors     []string       `json:"powerColors"`
	MakeupPalette   []PaletteColor `json:"makeupPalette"`
	Outfits         []Outfit       `json:"outfits"`
}

// MakeupRecommendation covers one makeup category (foundation, blush, ...).
type MakeupRecommendation struct {
	Category         string         `json:"category"`
	Suggestion       string         `json:"suggestion"`
	Palette          []PaletteColor `json:"palette"`
	Shape            string         `json:"shape,omitempty"`
	ShadingTechnique string         `json:"shadingTechnique,omitempty"`
	ApplicationTips  string         `json:"applicationTips"`
}

// FacialFeatures describes individual facial traits.
type FacialFeatures struct {
	Eyes              string `json:"eyes"`
	Nose              string `json:"nose"`
	Mouth             string `json:"mouth"`
	EyeToBrowDistance string `json:"eyeToBrowDistance"`
}

// SkincareRoutine is the recommended daily routine.
type SkincareRoutine struct {
	Type                   string   `json:"type"`
	RecommendedIngredients []string `json:"recommendedIngredients"`
	AvoidIngredients       []string `json:"avoidIngredients"`
	Explanation            string   `json:"explanation"`
}

// DietaryTips lists foods to favor and avoid for skin health.
type DietaryTips struct {
	Recommended []string `json:"recommended"`
	Avoid       []string `json:"avoid"`
}

// FaceAnalysis is the structured result of a face advisory request.
type FaceAnalysis struct {
	SkinTone              string                 `json:"skinTone"`
	Undertone             string                 `json:"undertone"`
	FacialAge             int                    `json:"facialAge"`
	SkinTexture           string                 `json:"skinTexture"`
	AcneStatus            string                 `json:"acneStatus"`
	FaceShape             string                 `json:"faceShape"`
	Features              FacialFeatures         `json:"features"`
	MakeupRecommendations []MakeupRecommendation `json:"makeupRecommendations"`
	SkincareRoutine       SkincareRoutine        `json:"skincareRoutine"`
	DietaryTips           DietaryTips            `json:"dietaryTips"`
}
