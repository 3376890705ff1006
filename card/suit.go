package card

type Suit byte

const (
	SuitInvalid Suit = iota
	Land
	Flood
	Weather
	Flame
	Army
	Wizard
	Leader
	Beast
	Weapon
	Artifact
	Wild
)

func (s Suit) String() string {
	switch s {
	case Land:
		return "Land"
	case Flood:
		return "Flood"
	case Weather:
		return "Weather"
	case Flame:
		return "Flame"
	case Army:
		return "Army"
	case Wizard:
		return "Wizard"
	case Leader:
		return "Leader"
	case Beast:
		return "Beast"
	case Weapon:
		return "Weapon"
	case Artifact:
		return "Artifact"
	case Wild:
		return "Wild"
	}
	return "?"
}
