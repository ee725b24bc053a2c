package model

import "encoding/json"

// Sign is a sidereal zodiac sign, Aries first.
type Sign uint8

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of zodiac signs.
const SignCount = 12

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Valid reports whether s is inside the closed enumeration.
func (s Sign) Valid() bool {
	return int(s) < SignCount
}

// Index is the zero-based position of s counted from Aries.
func (s Sign) Index() int {
	return int(s)
}

func (s Sign) String() string {
	if !s.Valid() {
		return "Sign(?)"
	}
	return signNames[s]
}

// SignAt returns the sign at a zero-based index, wrapping around the zodiac.
func SignAt(index int) Sign {
	return Sign(((index % SignCount) + SignCount) % SignCount)
}

// ParseSign resolves a sign by its display name.
func ParseSign(name string) (Sign, bool) {
	for i, n := range signNames {
		if n == name {
			return Sign(i), true
		}
	}
	return 0, false
}

func (s Sign) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Sign) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := ParseSign(name)
	if !ok {
		return &json.UnsupportedValueError{Str: name}
	}
	*s = parsed
	return nil
}
