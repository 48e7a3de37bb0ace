package domain

type Screen string

const (
	ScreenHome Screen = "home"
	ScreenAuth Screen = "auth"
	ScreenApp  Screen = "app"
)

type AuthMode string

const (
	AuthModeLogin  AuthMode = "login"
	AuthModeSignup AuthMode = "signup"
)

// ViewState is the tagged union of top-level screens. Mode is only set while
// the auth screen is active; the constructors keep invalid combinations
// unrepresentable.
type ViewState struct {
	Screen Screen
	Mode   AuthMode
}

func HomeView() ViewState {
	return ViewState{Screen: ScreenHome}
}

func AuthView(mode AuthMode) ViewState {
	if mode != AuthModeSignup {
		mode = AuthModeLogin
	}
	return ViewState{Screen: ScreenAuth, Mode: mode}
}

func AppView() ViewState {
	return ViewState{Screen: ScreenApp}
}
