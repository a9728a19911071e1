package domain

// Selection maps each option group to the chosen option name.
type Selection map[OptionGroup]string

// WithDefaults returns a copy of s where every group left empty falls back to
// the product's first option. The pricer never does this on its own.
func (s Selection) WithDefaults(p *Product) Selection {
	out := p.DefaultSelection()
	for group, name := range s {
		if name != "" {
			out[group] = name
		}
	}
	return out
}

// Configuration is a resolved selection, stored by option name.
type Configuration struct {
	Variant  string `json:"variant"`
	Color    string `json:"color"`
	Wheels   string `json:"wheels"`
	Interior string `json:"interior"`
}

func (c *Configuration) set(group OptionGroup, name string) {
	switch group {
	case GroupVariant:
		c.Variant = name
	case GroupColor:
		c.Color = name
	case GroupWheels:
		c.Wheels = name
	case GroupInterior:
		c.Interior = name
	}
}

// Selection converts the configuration back into a selection.
func (c Configuration) Selection() Selection {
	return Selection{
		GroupVariant:  c.Variant,
		GroupColor:    c.Color,
		GroupWheels:   c.Wheels,
		GroupInterior: c.Interior,
	}
}
