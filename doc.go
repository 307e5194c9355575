// Package mkbsc models multiplayer games of imperfect information and
// implements the knowledge-based subset construction (KBSC): a transform
// that rewrites a game so that each player's state encodes exactly the
// information that player could have inferred so far.
//
// The main type is Game, an immutable aggregate of a state set, an initial
// state, a joint-action alphabet, a labeled transition relation and one
// observation partitioning per player. Games are built once through the
// validating Create factory; every operator (Post, Project, KBSC) is a pure
// function returning a new Game.
//
// # Basic Usage
//
// Build a game and apply the construction:
//
//	g, err := mkbsc.Create(
//		[]string{"0", "1", "2"}, "0",
//		[][]string{{"w", "p"}, {"w", "p"}},
//		[]mkbsc.Edge{
//			{From: "0", Action: mkbsc.JointAction{"w", "p"}, To: []string{"1"}},
//			// ...
//		},
//		[]mkbsc.Grouping{
//			{Classes: [][]string{{"0", "1"}}, Others: true},
//			{Classes: [][]string{{"0", "2"}}, Others: true},
//		},
//	)
//	if err != nil {
//		// construction input was invalid
//	}
//	gk, err := g.KBSC()
//
// Repeated application is driven by IterateUntilIsomorphic, which stops
// when consecutive games become isomorphic (optionally including the
// observation structure) or a caller-supplied iteration limit runs out.
// The state count can grow combinatorially with each application and the
// iteration is not guaranteed to converge, so the limit matters.
//
// All computation is synchronous and allocation-only; the package performs
// no I/O. Rendering, persistence and command-line entry points live in
// separate packages layered over the read-only query surface.
package mkbsc
