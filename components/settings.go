package components

import "github.com/yohamta/donburi"

// SettingsData holds viewer toggles that survive level switches.
type SettingsData struct {
	ShowColliders bool
	ShowOccluders bool
}

var Settings = donburi.NewComponentType[SettingsData]()
