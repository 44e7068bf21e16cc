package content

import "encoding/json"

// BatchResult is the persisted outcome of one production run.
type BatchResult struct {
	Ideas      []Idea   `json:"ideas"`
	Scripts    []Script `json:"scripts"`
	AudioPaths []string `json:"audioPaths,omitempty"`
}

// ParseBatchResult decodes a saved result file.
func ParseBatchResult(data []byte) (BatchResult, error) {
	var r BatchResult
	if err := json.Unmarshal(data, &r); err != nil {
		return BatchResult{}, err
	}
	return r, nil
}

// Encode renders the result as indented JSON for on-disk persistence.
func (r BatchResult) Encode() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
