package domain

// PriceConfiguration resolves sel against the product's option catalog and
// returns the chosen option names with the total price. A group missing from
// sel (or mapped to "") fails with MissingSelectionError; a name that matches
// no option fails with UnknownOptionError. Matching is exact and case-sensitive.
func PriceConfiguration(p *Product, sel Selection) (Configuration, int64, error) {
	var cfg Configuration
	total := p.BasePrice

	for _, group := range OptionGroups {
		name, ok := sel[group]
		if !ok || name == "" {
			return Configuration{}, 0, &MissingSelectionError{Group: group}
		}

		opt, found := findOption(p.Configurations.Options(group), name)
		if !found {
			return Configuration{}, 0, &UnknownOptionError{Group: group, Name: name}
		}

		total += opt.Price
		cfg.set(group, opt.Name)
	}

	return cfg, total, nil
}

func findOption(options []Option, name string) (Option, bool) {
	for _, opt := range options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}
