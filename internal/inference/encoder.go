package inference

import "fmt"

// OneHotEncoder maps a weight class to a one-hot block over the categories seen in training.
// A category outside the fitted set encodes as all zeros.
type OneHotEncoder struct {
	Categories []string `json:"categories"`
	index      map[string]int
}

func NewOneHotEncoder(categories []string) (*OneHotEncoder, error) {
	e := &OneHotEncoder{Categories: categories}
	if err := e.init(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *OneHotEncoder) init() error {
	e.index = make(map[string]int, len(e.Categories))
	for i, c := range e.Categories {
		if _, dup := e.index[c]; dup {
			return fmt.Errorf("duplicate encoder category %q", c)
		}
		e.index[c] = i
	}
	return nil
}

// Width is the number of columns Encode appends.
func (e *OneHotEncoder) Width() int { return len(e.Categories) }

// Encode appends the one-hot block for category to dst.
func (e *OneHotEncoder) Encode(dst []float64, category string) []float64 {
	start := len(dst)
	for range e.Categories {
		dst = append(dst, 0)
	}
	if i, ok := e.index[category]; ok {
		dst[start+i] = 1
	}
	return dst
}
