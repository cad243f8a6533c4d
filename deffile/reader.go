package deffile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ksolve-go/movecompiler"
	"github.com/katalvlaran/ksolve-go/puzzle"
)

// Ruleset is everything a definition file produces: the compiled move
// set, the solved position, and the ancillary constraints a scramble is
// read and searched against.
type Ruleset struct {
	Name      string
	Registry  *puzzle.Registry
	Sets      []puzzle.Set
	Moves     []puzzle.Move
	Forbidden *puzzle.ForbiddenPairs
	Solved    puzzle.Position
	Ignore    puzzle.Position
	Blocks    []puzzle.Block

	// Deprecated lists, in encounter order, every deprecated command
	// (ParallelMoves, Multiplicators, MoveLimits) this file contained.
	// Read accepts and skips each rather than erroring, matching
	// readdef.h's own tolerance for definition files written against an
	// older version of the grammar; the caller decides whether and how
	// to warn about them.
	Deprecated []string
}

// Read parses a definition file from r per the token grammar.
func Read(r io.Reader) (*Ruleset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := &parser{
		sc:       newScanner(data),
		registry: puzzle.NewRegistry(),
	}

	return p.parse()
}

// parser owns the mutable state of one definition-file read.
type parser struct {
	sc       *scanner
	registry *puzzle.Registry
	locked   bool // true once Move, Solved, or Ignore has been seen

	name       string
	sets       []puzzle.Set
	compiler   *movecompiler.Compiler
	solved     puzzle.Position
	ignore     puzzle.Position
	blocks     []puzzle.Block
	deprecated []string
}

func (p *parser) parse() (*Ruleset, error) {
	for {
		cmd := p.sc.token()
		if cmd == "" {
			break
		}

		var err error
		switch cmd {
		case "Name":
			p.name = p.sc.restOfLine()
		case "Set":
			err = p.readSet()
		case "Move":
			err = p.readMove()
		case "Solved":
			err = p.readSolved()
		case "ForbiddenPairs":
			err = p.readForbiddenPairs()
		case "ForbiddenGroups":
			err = p.readForbiddenGroups()
		case "Ignore":
			err = p.readIgnore()
		case "Block":
			err = p.readBlock()
		case "ParallelMoves", "Multiplicators", "MoveLimits":
			p.deprecated = append(p.deprecated, cmd)
			p.skipDeprecated()
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
		}
		if err != nil {
			return nil, err
		}
	}

	out := &Ruleset{
		Name:       p.name,
		Registry:   p.registry,
		Sets:       p.sets,
		Solved:     p.solved,
		Ignore:     p.ignore,
		Blocks:     p.blocks,
		Deprecated: p.deprecated,
	}
	if p.compiler != nil {
		p.compiler.DetectParallel()
		out.Moves = p.compiler.Moves()
		out.Forbidden = p.compiler.Forbidden()
	} else {
		out.Forbidden = puzzle.NewForbiddenPairs()
	}

	return out, nil
}

// ensureCompiler locks further Set declarations and, on first call,
// creates the Compiler over the sets declared so far.
func (p *parser) ensureCompiler() {
	p.locked = true
	if p.compiler == nil {
		p.compiler = movecompiler.NewCompiler(p.sets)
	}
}

// moveID looks up a compiled move (generator or derived power) by name.
func (p *parser) moveID(name string) (int, bool) {
	if p.compiler == nil {
		return 0, false
	}
	for _, mv := range p.compiler.Moves() {
		if mv.Name == name {
			return mv.ID, true
		}
	}

	return 0, false
}

func (p *parser) readInt(context string) (int, error) {
	tok := p.sc.token()
	if tok == "" {
		return 0, fmt.Errorf("%w: %s", ErrUnexpectedEnd, context)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q", ErrBadInt, context, tok)
	}

	return v, nil
}

func (p *parser) readSet() error {
	if p.locked {
		return fmt.Errorf("%w: Set", ErrSetsMustComeFirst)
	}
	name := p.sc.token()
	if name == "" {
		return fmt.Errorf("%w: Set name", ErrUnexpectedEnd)
	}
	if _, ok := p.registry.Lookup(name); ok {
		return fmt.Errorf("%w: %q", ErrSetRedeclared, name)
	}

	size, err := p.readInt("Set " + name + " size")
	if err != nil {
		return err
	}
	modulus, err := p.readInt("Set " + name + " modulus")
	if err != nil {
		return err
	}
	set, err := puzzle.NewSet(name, size, modulus)
	if err != nil {
		return err
	}

	id := p.registry.IDFor(name)
	for len(p.sets) <= id {
		p.sets = append(p.sets, puzzle.Set{})
	}
	p.sets[id] = set

	return nil
}

func (p *parser) readMove() error {
	name := p.sc.token()
	if name == "" {
		return fmt.Errorf("%w: Move name", ErrUnexpectedEnd)
	}
	p.ensureCompiler()
	if _, exists := p.moveID(name); exists {
		return fmt.Errorf("%w: %q", ErrMoveRedeclared, name)
	}

	action, err := p.readPosition(false, false, "move "+name)
	if err != nil {
		return err
	}
	if _, err := p.compiler.AddGenerator(name, action); err != nil {
		return err
	}

	return nil
}

func (p *parser) readSolved() error {
	p.ensureCompiler()
	pos, err := p.readPosition(true, false, "solved state")
	if err != nil {
		return err
	}
	p.solved = pos
	for i := range p.sets {
		if err := p.sets[i].DeriveFromSolved(pos.Sets[i].Perm); err != nil {
			return err
		}
	}

	return nil
}

func (p *parser) readIgnore() error {
	p.ensureCompiler()
	pos, err := p.readPosition(false, true, "Ignore command")
	if err != nil {
		return err
	}
	p.ignore = pos

	return nil
}

// readPosition reads a "{ <setName> <perm...> [<ori...>] }* End" block.
// checkUnique rejects a repeated label in any substate it reads.
// zeroDefault chooses what an unmentioned set's substate defaults to:
// all-zero (Ignore's "0 = don't ignore" convention) when true, identity
// (1..n, the "this set is untouched" convention for moves and solved
// positions) when false.
func (p *parser) readPosition(checkUnique, zeroDefault bool, title string) (puzzle.Position, error) {
	pos := puzzle.NewPosition(len(p.sets))
	seen := make([]bool, len(p.sets))

	setname := p.sc.token()
	for setname != "End" {
		if setname == "" {
			return puzzle.Position{}, fmt.Errorf("%w: %s", ErrUnexpectedEnd, title)
		}
		id, ok := p.registry.Lookup(setname)
		if !ok || id >= len(p.sets) {
			return puzzle.Position{}, fmt.Errorf("%w: %q in %s", ErrUnknownSet, setname, title)
		}
		if seen[id] {
			return puzzle.Position{}, fmt.Errorf("%w: %q in %s", ErrSetInPositionTwice, setname, title)
		}
		seen[id] = true

		size := p.sets[id].Size
		sub := puzzle.NewSubstate(size)
		for i := 0; i < size; i++ {
			v, err := p.readInt(fmt.Sprintf("%s permutation for %q", title, setname))
			if err != nil {
				return puzzle.Position{}, err
			}
			sub.Perm[i] = v
		}
		if checkUnique && !sub.IsUniquePermutation() {
			return puzzle.Position{}, fmt.Errorf("%w: %q in %s", puzzle.ErrInvalidPermutation, setname, title)
		}

		next := p.sc.token()
		if next == "" {
			return puzzle.Position{}, fmt.Errorf("%w: %s", ErrUnexpectedEnd, title)
		}
		if !looksNumeric(next) {
			pos.Sets[id] = sub
			setname = next

			continue
		}
		for i := 0; i < size; i++ {
			tok := next
			if i > 0 {
				tok = p.sc.token()
			}
			v, err := strconv.Atoi(tok)
			if err != nil {
				return puzzle.Position{}, fmt.Errorf("%w: %s orientation for %q: %q", ErrBadInt, title, setname, tok)
			}
			sub.Ori[i] = v
		}
		pos.Sets[id] = sub
		setname = p.sc.token()
	}

	for id := range p.sets {
		if seen[id] {
			continue
		}
		size := p.sets[id].Size
		sub := puzzle.NewSubstate(size)
		if !zeroDefault {
			for i := 0; i < size; i++ {
				sub.Perm[i] = i + 1
			}
		}
		pos.Sets[id] = sub
	}

	return pos, nil
}

func (p *parser) readForbiddenPairs() error {
	if p.compiler == nil {
		return fmt.Errorf("%w: ForbiddenPairs before any Move declared", ErrUnexpectedEnd)
	}

	a := p.sc.token()
	for a != "End" {
		if a == "" {
			return fmt.Errorf("%w: ForbiddenPairs", ErrUnexpectedEnd)
		}
		aID, ok := p.moveID(a)
		if !ok {
			return fmt.Errorf("%w: %q in ForbiddenPairs", ErrUnknownMove, a)
		}
		b := p.sc.token()
		if b == "" {
			return fmt.Errorf("%w: ForbiddenPairs", ErrUnexpectedEnd)
		}
		bID, ok := p.moveID(b)
		if !ok {
			return fmt.Errorf("%w: %q in ForbiddenPairs", ErrUnknownMove, b)
		}
		p.compiler.Forbidden().Add(aID, bID)

		a = p.sc.token()
	}

	return nil
}

// readForbiddenGroups reads the line-oriented ForbiddenGroups block: each
// line names a group of moves, all-pairs-including-self forbidden against
// each other, until a line whose first field is "End".
func (p *parser) readForbiddenGroups() error {
	if p.compiler == nil {
		return fmt.Errorf("%w: ForbiddenGroups before any Move declared", ErrUnexpectedEnd)
	}
	p.sc.restOfLine() // discard the remainder of the command's own line

	for {
		line := p.sc.restOfLine()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			if p.sc.atEOF() {
				return fmt.Errorf("%w: ForbiddenGroups", ErrUnexpectedEnd)
			}

			continue
		}
		if fields[0] == "End" {
			return nil
		}

		group := make([]int, 0, len(fields))
		for _, name := range fields {
			id, ok := p.moveID(name)
			if !ok {
				return fmt.Errorf("%w: %q in ForbiddenGroups", ErrUnknownMove, name)
			}
			group = append(group, id)
		}
		for _, a := range group {
			for _, b := range group {
				p.compiler.Forbidden().Add(a, b)
			}
		}
	}
}

func (p *parser) readBlock() error {
	block := puzzle.NewBlock()
	setname := p.sc.token()
	for setname != "End" {
		if setname == "" {
			return fmt.Errorf("%w: Block", ErrUnexpectedEnd)
		}
		id, ok := p.registry.Lookup(setname)
		if !ok || id >= len(p.sets) {
			return fmt.Errorf("%w: %q in Block", ErrUnknownSet, setname)
		}

		p.sc.restOfLine() // past the setname token's own (otherwise empty) line
		indices := strings.Fields(p.sc.restOfLine())
		for _, tok := range indices {
			idx, err := strconv.Atoi(tok)
			if err != nil {
				return fmt.Errorf("%w: Block index %q", ErrBadInt, tok)
			}
			if idx <= 0 || idx > p.sets[id].Size {
				return fmt.Errorf("%w: piece %d in set %q", ErrPieceOutOfRange, idx, setname)
			}
			block.Add(id, idx-1)
		}

		setname = p.sc.token()
	}
	p.blocks = append(p.blocks, block)

	return nil
}

// skipDeprecated discards a deprecated command's token stream through its
// terminating "End": ParallelMoves and Multiplicators predate
// movecompiler's own commuting-generator detection, and MoveLimits moved
// to the scramble file.
func (p *parser) skipDeprecated() {
	for {
		tok := p.sc.token()
		if tok == "" || tok == "End" {
			return
		}
	}
}
