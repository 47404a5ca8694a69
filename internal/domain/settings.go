package domain

// Preference keys recognized as UI settings. Everything else living in the
// preferences map belongs to other features and must survive settings writes.
const (
	PrefSidebarCollapsed   = "sidebarCollapsed"
	PrefDashboardTimeRange = "performanceDashboardTimeRange"
)

// DefaultDashboardTimeRange is used when no time range has been stored
const DefaultDashboardTimeRange = "today"

// UISettings is the UI settings subset of a user's preferences map, with
// defaults filled in. The time range is passed through as stored, so a
// client that saved a non-string value gets it back unchanged.
type UISettings struct {
	SidebarCollapsed              bool `json:"sidebarCollapsed"`
	PerformanceDashboardTimeRange any  `json:"performanceDashboardTimeRange"`
}

// UISettingsFrom projects the UI settings out of a preferences map,
// substituting defaults for absent values.
func UISettingsFrom(prefs map[string]any) UISettings {
	settings := UISettings{
		SidebarCollapsed:              false,
		PerformanceDashboardTimeRange: DefaultDashboardTimeRange,
	}

	if collapsed, ok := prefs[PrefSidebarCollapsed].(bool); ok {
		settings.SidebarCollapsed = collapsed
	}
	if timeRange, ok := prefs[PrefDashboardTimeRange]; ok && timeRange != nil {
		settings.PerformanceDashboardTimeRange = timeRange
	}

	return settings
}

// UISettingsPatch is a partial settings update. Absent fields leave the
// stored value alone.
type UISettingsPatch struct {
	SidebarCollapsed              *bool `json:"sidebarCollapsed"`
	PerformanceDashboardTimeRange any   `json:"performanceDashboardTimeRange"`
}

// ApplyTo shallow-merges the patch into a copy of the given preferences map.
// Keys unrelated to UI settings are carried over untouched.
func (p UISettingsPatch) ApplyTo(prefs map[string]any) map[string]any {
	merged := make(map[string]any, len(prefs)+2)
	for k, v := range prefs {
		merged[k] = v
	}

	if p.SidebarCollapsed != nil {
		merged[PrefSidebarCollapsed] = *p.SidebarCollapsed
	}
	if p.PerformanceDashboardTimeRange != nil {
		merged[PrefDashboardTimeRange] = p.PerformanceDashboardTimeRange
	}

	return merged
}
