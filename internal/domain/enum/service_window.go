package enum

import "encoding/json"

// ServiceWindow identifies which serving window (and therefore which menu
// file) is active: the day menu, the evening menu, or neither.
type ServiceWindow int

const (
	WindowClosed  ServiceWindow = 0
	WindowDay     ServiceWindow = 1
	WindowEvening ServiceWindow = 2
)

func (w ServiceWindow) String() string {
	return [...]string{"Closed", "Day", "Evening"}[w]
}

func (w ServiceWindow) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *ServiceWindow) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*w = ServiceWindow(i)
		return nil
	}
	switch str {
	case "Day":
		*w = WindowDay
	case "Evening":
		*w = WindowEvening
	default:
		*w = WindowClosed
	}
	return nil
}

// Open reports whether the window accepts orders.
func (w ServiceWindow) Open() bool {
	return w == WindowDay || w == WindowEvening
}
