package trip

// View identifies the top-level screen the app should render. There is no
// back-stack; "back" is an explicit view reassignment.
type View string

const (
	ViewOnboarding View = "onboarding"
	ViewHome       View = "home"
	ViewPlanTrip   View = "planTrip"
	ViewTrip       View = "trip"
)

// resolveView picks the boot view: onboarding until preferences exist, then
// the active trip if one is set, else home.
func resolveView(hasPreferences bool, activeTripID string) View {
	if !hasPreferences {
		return ViewOnboarding
	}
	if activeTripID != "" {
		return ViewTrip
	}
	return ViewHome
}
