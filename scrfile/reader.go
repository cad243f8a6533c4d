package scrfile

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/ksolve-go/deffile"
	"github.com/katalvlaran/ksolve-go/puzzle"
)

// defaultMaxDepth is the depth cap a scramble starts with when the
// caller leaves initialMaxDepth at zero.
const defaultMaxDepth = 999

// Read parses a scramble file from r against an already-compiled
// deffile.Ruleset, returning one ScrambleDef per Scramble, ScrambleAlg,
// or RandomScramble block encountered. seed seeds RandomScramble's
// deterministic RNG (0 selects a fixed default stream). initialMaxDepth
// seeds the depth cap every scramble starts with, before any MaxDepth
// command in the file overrides it (0 selects 999, the CLI's own -d
// default); this lets a caller's own depth flag act as the file's
// starting point exactly as the source's maxDepthMain global does.
func Read(r io.Reader, rs *deffile.Ruleset, seed int64, initialMaxDepth int) ([]ScrambleDef, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if initialMaxDepth <= 0 {
		initialMaxDepth = defaultMaxDepth
	}

	p := &parser{
		sc:       newScanner(data),
		rs:       rs,
		rng:      rngFromSeed(seed),
		maxDepth: initialMaxDepth,
		htm:      true,
	}

	return p.parse()
}

// parser owns one scramble-file read's meta-command state, carried
// forward across scrambles until a later command overwrites it.
type parser struct {
	sc  *scanner
	rs  *deffile.Ruleset
	rng *rand.Rand

	maxDepth int
	slack    int
	htm      bool
	limits   []puzzle.MoveLimit

	defs []ScrambleDef
}

func (p *parser) parse() ([]ScrambleDef, error) {
	for {
		cmd := p.sc.token()
		if cmd == "" {
			break
		}

		var err error
		switch cmd {
		case "MaxDepth":
			p.maxDepth, err = p.readInt("MaxDepth")
		case "Slack":
			p.slack, err = p.readInt("Slack")
		case "HTM":
			p.htm = true
		case "QTM":
			p.htm = false
		case "MoveLimits":
			err = p.readMoveLimits()
		case "Scramble":
			err = p.readScramble()
		case "ScrambleAlg":
			err = p.readScrambleAlg()
		case "RandomScramble":
			err = p.readRandomScramble()
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
		}
		if err != nil {
			return nil, err
		}
	}

	return p.defs, nil
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

func (p *parser) moveID(name string) (puzzle.Move, bool) {
	for _, mv := range p.rs.Moves {
		if mv.Name == name {
			return mv, true
		}
	}

	return puzzle.Move{}, false
}

func (p *parser) snapshot(name string, state, ignoreExtra puzzle.Position) ScrambleDef {
	return ScrambleDef{
		Name:     name,
		State:    state,
		Ignore:   unionIgnore(p.rs.Sets, p.rs.Ignore, ignoreExtra),
		MaxDepth: p.maxDepth,
		Slack:    p.slack,
		HTM:      p.htm,
		Limits:   append([]puzzle.MoveLimit(nil), p.limits...),
	}
}

// readScramble reads "Scramble <name>\n<position block>\nEnd", where a
// permutation entry may be "?" (label unknown, masked) or "?N" (label N,
// masked) in addition to a plain digit string.
func (p *parser) readScramble() error {
	name := p.sc.token()
	if name == "" {
		return fmt.Errorf("%w: Scramble name", ErrUnexpectedEnd)
	}

	state := puzzle.Identity(p.rs.Sets)
	ignoreExtra := puzzle.ZeroMask(p.rs.Sets)
	seen := make([]bool, len(p.rs.Sets))

	setname := p.sc.token()
	for setname != "End" {
		if setname == "" {
			return fmt.Errorf("%w: scramble %q", ErrUnexpectedEnd, name)
		}
		id, ok := p.rs.Registry.Lookup(setname)
		if !ok || id >= len(p.rs.Sets) {
			return fmt.Errorf("%w: %q in scramble %q", ErrUnknownSet, setname, name)
		}
		if seen[id] {
			return fmt.Errorf("%w: %q in scramble %q", ErrSetInScrambleTwice, setname, name)
		}
		seen[id] = true

		size := p.rs.Sets[id].Size
		sub := puzzle.NewSubstate(size)
		maskSub := puzzle.NewSubstate(size)
		for i := 0; i < size; i++ {
			tok := p.sc.token()
			if tok == "" {
				return fmt.Errorf("%w: scramble %q", ErrUnexpectedEnd, name)
			}
			v, masked, err := parseScrambleLabel(tok)
			if err != nil {
				return fmt.Errorf("%w: scramble %q permutation for %q: %q", ErrBadInt, name, setname, tok)
			}
			sub.Perm[i] = v
			if masked {
				maskSub.Perm[i] = 1
			}
		}

		next := p.sc.token()
		if next == "" {
			return fmt.Errorf("%w: scramble %q", ErrUnexpectedEnd, name)
		}
		if !looksNumeric(next) {
			state.Sets[id] = sub
			ignoreExtra.Sets[id] = maskSub
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
				return fmt.Errorf("%w: scramble %q orientation for %q: %q", ErrBadInt, name, setname, tok)
			}
			sub.Ori[i] = v
		}
		state.Sets[id] = sub
		ignoreExtra.Sets[id] = maskSub
		setname = p.sc.token()
	}

	p.defs = append(p.defs, p.snapshot(name, state, ignoreExtra))

	return nil
}

// parseScrambleLabel decodes one permutation token: a plain digit string,
// a bare "?" (unknown label, masked), or "?N" (known label N, masked).
func parseScrambleLabel(tok string) (value int, masked bool, err error) {
	if tok == "?" {
		return puzzle.UnknownPerm, true, nil
	}
	if strings.HasPrefix(tok, "?") {
		v, convErr := strconv.Atoi(tok[1:])
		if convErr != nil {
			return 0, false, convErr
		}

		return v, true, nil
	}
	v, convErr := strconv.Atoi(tok)
	if convErr != nil {
		return 0, false, convErr
	}

	return v, false, nil
}

// readScrambleAlg reads "ScrambleAlg <name>\n<move names...>\nEnd",
// applying each named move in turn from solved. A name with no matching
// compiled move is skipped with a warning annotation on the scramble's
// name rather than an error, mirroring the source's tolerant behavior
// for scramble files written against an older ruleset.
func (p *parser) readScrambleAlg() error {
	name := p.sc.token()
	if name == "" {
		return fmt.Errorf("%w: ScrambleAlg name", ErrUnexpectedEnd)
	}

	state := puzzle.Identity(p.rs.Sets)
	skipped := false
	tok := p.sc.token()
	for tok != "End" {
		if tok == "" {
			return fmt.Errorf("%w: ScrambleAlg %q", ErrUnexpectedEnd, name)
		}
		mv, ok := p.moveID(tok)
		if !ok {
			skipped = true
			tok = p.sc.token()

			continue
		}
		state = puzzle.Compose(p.rs.Sets, state, mv)
		tok = p.sc.token()
	}
	if skipped {
		name += " (skipped some moves)"
	}

	p.defs = append(p.defs, p.snapshot(name, state, puzzle.ZeroMask(p.rs.Sets)))

	return nil
}

// readRandomScramble reads "RandomScramble <name>\n...\nEnd", discarding
// any token list the block carries (the source keeps this slot for
// forward compatibility with future constraint syntax) and generating
// the scramble by random walk instead.
func (p *parser) readRandomScramble() error {
	name := p.sc.token()
	if name == "" {
		return fmt.Errorf("%w: RandomScramble name", ErrUnexpectedEnd)
	}
	tok := p.sc.token()
	for tok != "End" {
		if tok == "" {
			return fmt.Errorf("%w: RandomScramble %q", ErrUnexpectedEnd, name)
		}
		tok = p.sc.token()
	}

	state := randomScramble(p.rs.Sets, p.rs.Moves, p.rs.Blocks, p.rng)

	p.defs = append(p.defs, p.snapshot(name, state, puzzle.ZeroMask(p.rs.Sets)))

	return nil
}

// readMoveLimits reads "MoveLimits\n<name[*] count>...\nEnd". A "*"
// suffix shares the count across every power of that move's generator
// (its whole parent-ID group); a bare name limits only that single
// compiled move. Owned is computed once per entry from the current move
// table.
func (p *parser) readMoveLimits() error {
	var limits []puzzle.MoveLimit
	tok := p.sc.token()
	for tok != "End" {
		if tok == "" {
			return fmt.Errorf("%w: MoveLimits", ErrUnexpectedEnd)
		}
		isGroup := strings.HasSuffix(tok, "*")
		name := strings.TrimSuffix(tok, "*")
		mv, ok := p.moveID(name)
		if !ok {
			return fmt.Errorf("%w: %q in MoveLimits", ErrUnknownMove, name)
		}
		count, err := p.readInt("MoveLimits count for " + name)
		if err != nil {
			return err
		}

		groupID := mv.ID
		group := map[int]bool{mv.ID: true}
		if isGroup {
			groupID = mv.ParentID
			group = make(map[int]bool)
			for _, other := range p.rs.Moves {
				if other.ParentID == mv.ParentID {
					group[other.ID] = true
				}
			}
		}

		limits = append(limits, puzzle.MoveLimit{
			MoveOrGroupID: groupID,
			IsGroup:       isGroup,
			Remaining:     count,
			Owned:         ownedPieces(p.rs.Sets, p.rs.Moves, group),
		})

		tok = p.sc.token()
	}
	p.limits = limits

	return nil
}
