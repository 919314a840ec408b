// Package scene defines the Scene interface for frontend screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents one screen of the windowed frontend.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update is called once per ebiten tick. The scene advances its own
	// simulation clock, so no delta time is passed in.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update() (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup or resource release.
	OnExit()
}
