package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"cinematch/internal/contact"
	"cinematch/internal/ui/input"
	"cinematch/internal/ui/state"
	"cinematch/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state    *state.AppState
	inputs   *input.Handler
	width    int
	height   int
	help     help.Model
	spinner  string
	bindings []key.Binding
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, inputs *input.Handler) *ViewModel {
	return &ViewModel{
		state:  appState,
		inputs: inputs,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it shows
func (vm *ViewModel) SetHelp(helpModel help.Model, bindings []key.Binding) {
	vm.help = helpModel
	vm.bindings = bindings
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// contactFields renders the form inputs in tab order
func (vm *ViewModel) contactFields() []views.ContactField {
	fields := make([]views.ContactField, 0, len(contact.Fields))
	for _, f := range contact.Fields {
		ti := vm.inputs.Field(f)
		fields = append(fields, views.ContactField{
			Label:   f.String(),
			View:    ti.View(),
			Focused: ti.Focused(),
		})
	}
	return fields
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	st := vm.state
	start, end := st.Slider.Window()
	search := vm.inputs.Search()

	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Section:        st.Section,
		InputMode:      vm.inputs.CurrentMode().String(),
		SearchInput:    search.View(),
		SearchFocused:  search.Focused(),
		Suggestions:    st.Suggestions.Items(),
		SuggestionsOn:  st.Suggestions.Open(),
		FocusIndex:     st.Suggestions.Focus().Index(),
		CatalogLoading: st.CatalogLoading,
		CatalogSize:    st.Catalog.Len(),
		CatalogSample:  st.Catalog.IsFallback(),
		Movie:          st.Movie,
		LoadingMovie:   st.LoadingMovie,
		Spinner:        vm.spinner,
		Cards:          st.Cards,
		WindowStart:    start,
		WindowEnd:      end,
		Fallback:       st.Fallback,
		ErrorText:      st.ErrorText,
		ContactFields:  vm.contactFields(),
		ContactStatus:  st.Contact.Status(),
		Alert:          st.Contact.Alert(),
		StatusMessage:  st.StatusMessage,
		HelpModel:      vm.help,
		KeyBindings:    vm.bindings,
	}
}
