package models

// PersonalizationProfile is the reduced view of a user fed to the
// recommendation scorer and the chat greeting. Before login it is a locally
// editable placeholder; after login it is derived from the session account.
type PersonalizationProfile struct {
	Name              string   `json:"name"`
	Age               int      `json:"age,omitempty"`
	Location          string   `json:"location,omitempty"`
	Education         string   `json:"education,omitempty"`
	Interests         []string `json:"interests,omitempty"`
	PreferredLanguage string   `json:"preferred_language,omitempty"`
}

// ProfileForAccount derives a personalization profile from a logged-in
// account. Interests default to the student's subjects of study when no
// explicit interests are known.
func ProfileForAccount(a *Account) PersonalizationProfile {
	if a == nil {
		return PersonalizationProfile{}
	}
	p := PersonalizationProfile{Name: a.Name}
	if s, ok := a.AsStudent(); ok {
		p.Education = s.Grade
		p.Interests = []string{string(s.Stream)}
	}
	if t, ok := a.AsTeacher(); ok {
		p.Education = t.Qualification
		p.Interests = append([]string(nil), t.Subjects...)
	}
	return p
}
