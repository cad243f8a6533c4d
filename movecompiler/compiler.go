package movecompiler

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ksolve-go/puzzle"
)

// Compiler expands user-declared generators into their full power closure
// and accumulates the forbidden-pair relation. It owns no concurrency: the
// core is single-threaded and a Compiler is used from exactly one
// goroutine during definition-file reading.
type Compiler struct {
	sets      []puzzle.Set
	moves     []puzzle.Move
	parents   []int // move-id of each declared generator, in declaration order
	forbidden *puzzle.ForbiddenPairs
}

// NewCompiler returns a Compiler over sets (already declared, but not yet
// necessarily parity-finalized — each AddGenerator call narrows OParity and
// PParity further).
func NewCompiler(sets []puzzle.Set) *Compiler {
	return &Compiler{
		sets:      sets,
		forbidden: puzzle.NewForbiddenPairs(),
	}
}

// Sets returns the Compiler's set slice. Parity fields are mutated in place
// by AddGenerator, so this reflects the narrowed values after every call
// made so far.
func (c *Compiler) Sets() []puzzle.Set {
	return c.sets
}

// Moves returns every compiled move (generators and derived powers) in
// compilation order, indexed by Move.ID.
func (c *Compiler) Moves() []puzzle.Move {
	return c.moves
}

// Forbidden returns the accumulated forbidden-pair relation.
func (c *Compiler) Forbidden() *puzzle.ForbiddenPairs {
	return c.forbidden
}

// AddGenerator compiles a user-declared move named name with the given
// action, narrows each Set's OParity/PParity against it, expands its full
// cyclic power closure, and forbids every pair of powers sharing this
// parent. It returns the freshly compiled generator Move (QTM 1, ID ==
// ParentID).
func (c *Compiler) AddGenerator(name string, action puzzle.Position) (puzzle.Move, error) {
	if len(action.Sets) != len(c.sets) {
		return puzzle.Move{}, ErrShapeMismatch
	}
	for i, set := range c.sets {
		if len(action.Sets[i].Perm) != set.Size {
			return puzzle.Move{}, ErrShapeMismatch
		}
	}

	puzzle.AdjustOParity(c.sets, action)
	puzzle.AdjustPParity(c.sets, action)

	id := len(c.moves)
	gen := puzzle.Move{Name: name, ID: id, ParentID: id, QTM: 1, Action: action}
	c.moves = append(c.moves, gen)
	c.parents = append(c.parents, id)

	order, err := cyclicOrder(c.sets, action)
	if err != nil {
		return puzzle.Move{}, err
	}

	// moveGroup holds the move-id of every power 1..order-1 (power `order`
	// is the identity and is never compiled, since applying a generator
	// that many times in a row is always a no-op).
	moveGroup := []int{id}

	cur := action
	for i := 1; i <= order-2; i++ {
		cur = puzzle.Compose(c.sets, cur, puzzle.Move{Action: action})
		powerName, qtm := derivedPowerName(name, i, order)

		powerID := len(c.moves)
		moveGroup = append(moveGroup, powerID)
		c.moves = append(c.moves, puzzle.Move{
			Name:     powerName,
			ID:       powerID,
			ParentID: id,
			QTM:      qtm,
			Action:   cur,
		})
	}

	for _, a := range moveGroup {
		for _, b := range moveGroup {
			c.forbidden.Add(a, b)
		}
	}

	return gen, nil
}

// cyclicOrder returns the smallest k >= 1 such that applying action k times
// from the identity returns to the identity, searching up to
// orderSearchLimit applications.
func cyclicOrder(sets []puzzle.Set, action puzzle.Position) (int, error) {
	identity := puzzle.Identity(sets)
	cur := action
	order := 1
	for !puzzle.EqualModuloIgnore(cur, identity, puzzle.Position{}) {
		if order >= orderSearchLimit {
			return 0, ErrOrderNotFound
		}
		cur = puzzle.Compose(sets, cur, puzzle.Move{Action: action})
		order++
	}

	return order, nil
}

// derivedPowerName computes the canonical name and QTM weight of power
// i+1 of a generator of the given cyclic order, for i in [1, order-2]: a
// half-turn-or-shorter power is named baseName + its power number (qtm =
// p); a power closer to the identity from the other direction is named
// baseName (+ its complement number, when that is not 1) + "'" (qtm =
// order - p).
func derivedPowerName(baseName string, i, order int) (string, int) {
	p := i + 1
	if i < order/2 {
		return fmt.Sprintf("%s%d", baseName, p), p
	}
	qtm := order - i - 1
	name := baseName
	if i < order-2 {
		name += strconv.Itoa(qtm)
	}
	name += "'"

	return name, qtm
}
