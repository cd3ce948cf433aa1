package service

import "fmt"

// EventRange maps one logical event to the tab and column where its
// registrations are keyed. Team events (BEDROCK, DEHACK) have a team name in
// the column before the captain's email, so their lookup column is D instead
// of C.
type EventRange struct {
	Event        string
	Tab          string
	LookupColumn string
}

// Range returns the Sheets address of the whole lookup column, e.g.
// "BEDROCK!D:D".
func (er EventRange) Range() string {
	return fmt.Sprintf("%s!%s:%s", er.Tab, er.LookupColumn, er.LookupColumn)
}

// eventRanges is the fixed set of tabs checked by a registration lookup.
// Order matters: results are reported in this order. Every tab that can hold
// registrations must be listed here; a missing entry means lookups silently
// skip that event.
var eventRanges = []EventRange{
	{Event: "BEDROCK", Tab: "BEDROCK", LookupColumn: "D"},
	{Event: "DEHACK", Tab: "DEHACK", LookupColumn: "D"},
	{Event: "WOLF_DALAL", Tab: "WOLF_DALAL", LookupColumn: "C"},
	{Event: "DELIVERY_TEAM", Tab: "DELIVERY_TEAM", LookupColumn: "C"},
	{Event: "HANGOVER", Tab: "HANGOVER", LookupColumn: "C"},
	{Event: "RED_PAPERCLIP", Tab: "RED_PAPERCLIP", LookupColumn: "C"},
	{Event: "CROWDFUNDING", Tab: "CROWDFUNDING", LookupColumn: "C"},
	{Event: "KNIVES_OUT", Tab: "KNIVES_OUT", LookupColumn: "C"},
	{Event: "WING_TRADE", Tab: "WING_TRADE", LookupColumn: "C"},
}
