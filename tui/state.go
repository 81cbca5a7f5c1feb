package tui

type state int

const (
	loadingState state = iota
	listState
	detailState
	gotoState
	errorState
)
