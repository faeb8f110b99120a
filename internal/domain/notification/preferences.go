package notification

import "slices"

type TypePreference struct {
	Enabled   bool      `json:"enabled"`
	Frequency Frequency `json:"frequency"`
	Methods   []Method  `json:"methods"`
}

type Categories struct {
	FilterByIndustry []string `json:"filterByIndustry"`
}

type Preferences struct {
	Notifications map[Type]TypePreference `json:"notifications"`
	Categories    Categories              `json:"categories"`
}

// PreferencesPatch is a shallow merge: each listed type entry replaces the
// stored one, and Categories replaces the stored categories when set.
type PreferencesPatch struct {
	Notifications map[Type]TypePreference `json:"notifications,omitempty"`
	Categories    *Categories             `json:"categories,omitempty"`
}

func DefaultPreferences() Preferences {
	enabled := func(on bool, methods ...Method) TypePreference {
		return TypePreference{Enabled: on, Frequency: FrequencyImmediate, Methods: methods}
	}
	return Preferences{
		Notifications: map[Type]TypePreference{
			TypeApplicationSubmission: enabled(true, MethodEmail, MethodInApp),
			TypeApplicationReview:     enabled(true, MethodEmail, MethodInApp),
			TypeInterviewInvitation:   enabled(true, MethodEmail, MethodInApp),
			TypeApplicationRejection:  enabled(false, MethodEmail, MethodInApp),
			TypeOther:                 enabled(true, MethodInApp),
		},
		Categories: Categories{FilterByIndustry: []string{}},
	}
}

// Allows reports whether sending t is permitted. A type without an entry is not.
func (p Preferences) Allows(t Type) bool {
	pref, ok := p.Notifications[t]
	return ok && pref.Enabled
}

// DeliveryFor snapshots the frequency and methods a new notification of type t
// is delivered with, filling gaps with immediate and [email, in-app].
func (p Preferences) DeliveryFor(t Type) (Frequency, []Method) {
	pref := p.Notifications[t]

	freq := pref.Frequency
	if freq == "" {
		freq = FrequencyImmediate
	}
	methods := slices.Clone(pref.Methods)
	if methods == nil {
		methods = DefaultMethods()
	}
	return freq, methods
}

func (p Preferences) Merge(patch PreferencesPatch) Preferences {
	out := p.Clone()
	for t, pref := range patch.Notifications {
		pref.Methods = slices.Clone(pref.Methods)
		out.Notifications[t] = pref
	}
	if patch.Categories != nil {
		out.Categories = Categories{FilterByIndustry: slices.Clone(patch.Categories.FilterByIndustry)}
		if out.Categories.FilterByIndustry == nil {
			out.Categories.FilterByIndustry = []string{}
		}
	}
	return out
}

func (p Preferences) Clone() Preferences {
	out := Preferences{
		Notifications: make(map[Type]TypePreference, len(p.Notifications)),
		Categories:    Categories{FilterByIndustry: slices.Clone(p.Categories.FilterByIndustry)},
	}
	for t, pref := range p.Notifications {
		pref.Methods = slices.Clone(pref.Methods)
		out.Notifications[t] = pref
	}
	if out.Categories.FilterByIndustry == nil {
		out.Categories.FilterByIndustry = []string{}
	}
	return out
}

func (p PreferencesPatch) Validate() error {
	for t, pref := range p.Notifications {
		if !t.IsValid() {
			return ErrUnknownType
		}
		if pref.Frequency != "" && !pref.Frequency.IsValid() {
			return ErrInvalidFrequency
		}
		for _, m := range pref.Methods {
			if !m.IsValid() {
				return ErrInvalidMethod
			}
		}
	}
	return nil
}
