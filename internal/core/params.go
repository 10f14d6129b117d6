package core

import "fmt"

// Parameter describes a single value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values displayed for one frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lines flattens the snapshot into display rows, one header per group.
func (s ParameterSnapshot) Lines() []string {
	var out []string
	for _, group := range s.Groups {
		if group.Name != "" {
			out = append(out, "["+group.Name+"]")
		}
		for _, p := range group.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			out = append(out, fmt.Sprintf("%s: %s", label, p.Value))
		}
	}
	return out
}
