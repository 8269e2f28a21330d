package tui

// contentDeliveredMsg carries a debounced editor value.
type contentDeliveredMsg struct {
	text string
}

// savedMsg reports the outcome of a save started by the model.
type savedMsg struct {
	err  error
	quit bool
}
