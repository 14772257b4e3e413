package engine

// ActionKind tells the engine loop what to do after a scene's logic step.
type ActionKind int

const (
	ActionNothing ActionKind = iota
	ActionToggleFullScreen
	ActionQuit
	ActionPopScene
	ActionPushScene
	ActionSwitchToScene
)

func (k ActionKind) String() string {
	switch k {
	case ActionNothing:
		return "Nothing"
	case ActionToggleFullScreen:
		return "ToggleFullScreen"
	case ActionQuit:
		return "Quit"
	case ActionPopScene:
		return "PopScene"
	case ActionPushScene:
		return "PushScene"
	case ActionSwitchToScene:
		return "SwitchToScene"
	default:
		return "Unknown"
	}
}

// Action is returned by Scene.Logic. The zero value does nothing.
type Action struct {
	Kind    ActionKind
	factory SceneFactory
}

func Nothing() Action {
	return Action{Kind: ActionNothing}
}

func ToggleFullScreen() Action {
	return Action{Kind: ActionToggleFullScreen}
}

func Quit() Action {
	return Action{Kind: ActionQuit}
}

func PopScene() Action {
	return Action{Kind: ActionPopScene}
}

// PushScene pauses the current scene and puts the one built by factory on top.
func PushScene(factory SceneFactory) Action {
	return Action{Kind: ActionPushScene, factory: factory}
}

// SwitchToScene replaces the current scene with the one built by factory.
func SwitchToScene(factory SceneFactory) Action {
	return Action{Kind: ActionSwitchToScene, factory: factory}
}
