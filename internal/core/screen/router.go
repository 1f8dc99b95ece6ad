package screen

// ViewKind is one of the three mutually exclusive render outcomes.
type ViewKind string

const (
	ViewLoading   ViewKind = "loading"
	ViewEmpty     ViewKind = "empty"
	ViewPopulated ViewKind = "populated"
)

// View is the routing decision for a state.
type View struct {
	Kind           ViewKind `json:"kind"`
	ShowCityPicker bool     `json:"show_city_picker"`
}

// Route picks the view: loading beats empty, empty beats populated.
func Route(s State) View {
	switch {
	case s.IsLoading:
		return View{Kind: ViewLoading}
	case s.Result == nil:
		return View{Kind: ViewEmpty}
	default:
		return View{Kind: ViewPopulated, ShowCityPicker: s.IsCityListVisible}
	}
}
