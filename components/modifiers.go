package components

import (
	"github.com/automoto/boink/modifier"
	"github.com/yohamta/donburi"
)

var Modifiers = donburi.NewComponentType[modifier.Set]()
