package game

import "fmt"

// Game is a registered game: a unique id assigned by the Registry and a unique name.
type Game struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (g Game) String() string {
	return fmt.Sprintf("%s (#%d)", g.Name, g.ID)
}
