package domain

// Selection maps an option name to the chosen value.
type Selection map[string]string

// DefaultSelection returns the options of the first available variant,
// falling back to the first variant when none is available.
func (p Product) DefaultSelection() Selection {
	s := make(Selection)
	if len(p.Variants) == 0 {
		return s
	}

	initial := p.Variants[0]
	for _, v := range p.Variants {
		if v.AvailableForSale {
			initial = v
			break
		}
	}

	for _, o := range initial.SelectedOptions {
		s[o.Name] = o.Value
	}
	return s
}

// ResolveVariant returns the first variant whose every selected option
// is chosen in s.
func (p Product) ResolveVariant(s Selection) (Variant, bool) {
	for _, v := range p.Variants {
		if v.coveredBy(s) {
			return v, true
		}
	}
	return Variant{}, false
}

// OptionAvailable reports whether choosing value for the option name,
// keeping the rest of s, lands on a variant that is available for sale.
//
// Unavailable values are still listed by the caller, only disabled.
func (p Product) OptionAvailable(name, value string, s Selection) bool {
	for _, v := range p.Variants {
		if !v.AvailableForSale || !v.hasOption(name, value) {
			continue
		}
		if v.agreesWith(s, name) {
			return true
		}
	}
	return false
}

// HasSelector reports whether the product exposes a choice to the shopper.
func (p Product) HasSelector() bool {
	if len(p.Options) == 0 {
		return false
	}
	return !(len(p.Options) == 1 && len(p.Options[0].Values) == 1)
}

func (v Variant) hasOption(name, value string) bool {
	for _, o := range v.SelectedOptions {
		if o.Name == name && o.Value == value {
			return true
		}
	}
	return false
}

func (v Variant) coveredBy(s Selection) bool {
	for _, o := range v.SelectedOptions {
		if value, ok := s[o.Name]; !ok || value != o.Value {
			return false
		}
	}
	return true
}

// agreesWith checks every entry of s except the skipped option name.
func (v Variant) agreesWith(s Selection, skip string) bool {
	for name, value := range s {
		if name == skip {
			continue
		}
		if !v.hasOption(name, value) {
			return false
		}
	}
	return true
}
