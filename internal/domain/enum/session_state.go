package enum

import "encoding/json"

// SessionState is the position of an order session in the counter flow:
// collect identity, browse the menu, build the cart, show the bill.
type SessionState int

const (
	StateCollectingIdentity SessionState = 0
	StateBrowsingMenu       SessionState = 1
	StateBuildingCart       SessionState = 2
	StateBillDisplayed      SessionState = 3
)

func (s SessionState) String() string {
	return [...]string{"collecting_identity", "browsing_menu", "building_cart", "bill_displayed"}[s]
}

func (s SessionState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SessionState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SessionState(i)
		return nil
	}
	switch str {
	case "browsing_menu":
		*s = StateBrowsingMenu
	case "building_cart":
		*s = StateBuildingCart
	case "bill_displayed":
		*s = StateBillDisplayed
	default:
		*s = StateCollectingIdentity
	}
	return nil
}
