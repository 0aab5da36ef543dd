package entry

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FoodItem is one parsed food line inside a food entry payload.
type FoodItem struct {
	Item     string   `json:"item"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
	Calories *float64 `json:"calories"`
}

// FoodPayload is the structured result the server attaches to food entries.
type FoodPayload struct {
	Items         []FoodItem `json:"items"`
	TotalCalories *float64   `json:"total_calories"`
	TotalProteinG *float64   `json:"total_protein_g"`
	TotalCarbsG   *float64   `json:"total_carbs_g"`
	TotalFatG     *float64   `json:"total_fat_g"`
}

// Food decodes the parsed payload of a food entry. The server sometimes
// double-encodes the payload as a JSON string; both shapes are accepted.
func (e *Entry) Food() (*FoodPayload, bool) {
	if e.Type != TypeFood || len(e.Parsed) == 0 {
		return nil, false
	}
	raw := e.Parsed
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		raw = json.RawMessage(asString)
	}
	var p FoodPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false
	}
	if len(p.Items) == 0 {
		return nil, false
	}
	return &p, true
}

// DisplayText renders the entry for a list row. Malformed structured
// payloads degrade to the raw entry text; that is a display fallback, not an
// error state.
func (e *Entry) DisplayText() string {
	switch e.Type {
	case TypeWeight:
		if e.Value == nil {
			return e.Text
		}
		unit := "kg"
		if e.Unit != nil && *e.Unit != "" {
			unit = *e.Unit
		}
		return fmt.Sprintf("Weight: %.1f %s", *e.Value, unit)
	case TypeSteps:
		if e.Value == nil {
			return e.Text
		}
		return fmt.Sprintf("Steps: %.0f", *e.Value)
	case TypeFood:
		p, ok := e.Food()
		if !ok {
			return e.Text
		}
		parts := make([]string, 0, len(p.Items))
		for _, it := range p.Items {
			fields := []string{fmt.Sprintf("%g", it.Quantity)}
			if it.Unit != "" {
				fields = append(fields, it.Unit)
			}
			fields = append(fields, it.Item)
			s := strings.Join(fields, " ")
			if it.Calories != nil {
				s += fmt.Sprintf(" (%.0f kcal)", *it.Calories)
			}
			parts = append(parts, s)
		}
		out := "Food: " + strings.Join(parts, ", ")
		if p.TotalCalories != nil {
			out += fmt.Sprintf(" | %.0f kcal total", *p.TotalCalories)
		}
		return out
	default:
		return e.Text
	}
}
