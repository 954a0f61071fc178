package entity_test

import (
	"fmt"

	"github.com/bthesorceror/canvas-experiments/entity"
	"github.com/bthesorceror/canvas-experiments/entity/entitytest"
)

// ExampleEntity builds a player-controlled square, holds the right arrow
// for half a second and draws the result.
func ExampleEntity() {
	keyboard := entitytest.NewKeyboard(entity.KeyCodeRight)
	keys := keyboard.Keys()

	player := entity.Square(100, 400, entity.Props{
		Updaters: []entity.Updater{
			entity.UserMovement{Keys: keys},
			entity.PlayerRotation{Keys: keys},
		},
	}, entity.Patch{}.SetMovementSpeed(180).SetRotationSpeed(25).SetActive(true))

	player.Update(0.5)

	surface := entitytest.NewRecorder()
	player.Draw(surface)

	fmt.Printf("x=%.0f y=%.0f\n", player.X(), player.Y())
	fmt.Println(surface.Calls[1])
	// Output:
	// x=190 y=400
	// translate[190 400]
}

// ExampleAlternator cycles the active flag through a group of squares.
func ExampleAlternator() {
	a := entity.Square(0, 0, entity.Props{}, entity.Patch{})
	b := entity.Square(0, 0, entity.Props{}, entity.Patch{})

	alt, _ := entity.NewAlternator(a, b)
	fmt.Println(a.Active(), b.Active())

	alt.Next()
	fmt.Println(a.Active(), b.Active())
	// Output:
	// true false
	// false true
}
