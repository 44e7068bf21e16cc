package content

import "encoding/json"

// Strategy is the upstream account strategy the prompts are built from: who
// the content targets and what problems it should speak to.
type Strategy struct {
	Persona string   `json:"persona"`
	Pains   []string `json:"pains"`
}

// ParseStrategy decodes a strategy file. The persona field may be either a
// plain string or an object with a rawText field (the older file layout).
func ParseStrategy(data []byte) (Strategy, error) {
	var raw struct {
		Persona json.RawMessage `json:"persona"`
		Pains   []string        `json:"pains"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Strategy{}, err
	}
	s := Strategy{Pains: raw.Pains}

	if len(raw.Persona) > 0 {
		var text string
		if err := json.Unmarshal(raw.Persona, &text); err == nil {
			s.Persona = text
		} else {
			var obj struct {
				RawText string `json:"rawText"`
			}
			if err := json.Unmarshal(raw.Persona, &obj); err != nil {
				return Strategy{}, err
			}
			s.Persona = obj.RawText
		}
	}
	return s, nil
}
