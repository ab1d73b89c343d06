package router

import "go.uber.org/fx"

// Module wires gin engine construction into the fx graph.
var Module = fx.Provide(Setup)
