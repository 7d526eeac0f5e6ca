package roundsvg

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// operandCounts is the size of one operand group per command.
var operandCounts = map[rune]int{
	'M': 2,
	'L': 2,
	'T': 2,
	'H': 1,
	'V': 1,
	'Q': 4,
	'S': 4,
	'C': 6,
	'A': 7,
	'Z': 0,
}

// Decoder recovers end points from path descriptions. Curve control
// points and arc parameters are dropped, so decoding a rounded path
// gives back the tangent points, not the original vertices.
type Decoder struct {
	// Transform, when set, is applied to every decoded point.
	Transform *mt.Transform
}

// NewDecoder returns a Decoder scaling its output. See ScaleTransform.
func NewDecoder(scale float64) *Decoder {
	if scale == 0 {
		return &Decoder{}
	}
	return &Decoder{Transform: ScaleTransform(scale)}
}

// ParsePath decodes d without any transform.
func ParsePath(d string) []Tuple {
	return (&Decoder{}).Decode(d)
}

type pathDescriptionParser struct {
	lex            *gl.Lexer
	x, y           float64
	startX, startY float64
	started        bool
	transform      *mt.Transform
	points         []Tuple
}

// Decode returns one point per command end point. Unknown commands,
// unsupported characters and malformed operands are logged and skipped.
func (dec *Decoder) Decode(d string) []Tuple {
	l, items := gl.Lex("d", normalizePathData(d))
	// the lexer goroutine sends a trailing EOS before closing items
	defer func() {
		for range items {
		}
	}()

	pdp := &pathDescriptionParser{lex: l, transform: dec.Transform}
	for {
		i := pdp.lex.NextItem()
		switch i.Type {
		case gl.ItemError:
			// zero items are only read after items is closed
			Logger().Warn("path lexer stopped early", "points", len(pdp.points))
			return pdp.points
		case gl.ItemEOS:
			return pdp.points
		case gl.ItemLetter, gl.ItemWord:
			for _, c := range i.Value {
				pdp.parseCommand(c)
			}
		case gl.ItemNumber:
			Logger().Warn("path operand without command", "value", i.Value)
		}
	}
}

// normalizePathData rewrites d into the syntax the lexer reads. Characters
// the lexer would stop at become spaces; unsupported ones are logged.
func normalizePathData(d string) string {
	var b strings.Builder
	b.Grow(len(d) + 8)
	var inNumber, seenDot, inExp, afterExp bool
	for i, r := range d {
		switch {
		case r >= '0' && r <= '9':
			if !inNumber {
				inNumber, seenDot, inExp = true, false, false
			}
			afterExp = false
			b.WriteRune(r)
		case r == '.':
			if !inNumber || seenDot || inExp {
				if inNumber {
					b.WriteByte(' ')
				}
				b.WriteByte('0')
				inNumber, inExp = true, false
			}
			seenDot, afterExp = true, false
			b.WriteRune(r)
		case r == '+' || r == '-':
			if !afterExp {
				inNumber, seenDot, inExp = true, false, false
			}
			afterExp = false
			b.WriteRune(r)
		case (r == 'e' || r == 'E') && inNumber && !inExp && exponentFollows(d[i+1:]):
			inExp, afterExp = true, true
			b.WriteByte('e')
		case r == '\r' || r == '\f':
			inNumber, afterExp = false, false
			b.WriteByte(' ')
		case r == ' ' || r == '\t' || r == '\n' || r == ',' || r == '(' || r == ')' ||
			unicode.IsLetter(r) || unicode.IsNumber(r):
			inNumber, afterExp = false, false
			b.WriteRune(r)
		default:
			Logger().Warn("unsupported character in path data", "char", string(r), "offset", i)
			inNumber, afterExp = false, false
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// exponentFollows reports whether s starts with an exponent value.
func exponentFollows(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

func (pdp *pathDescriptionParser) parseCommand(c rune) {
	cmd := unicode.ToUpper(c)
	rel := cmd != c
	n, ok := operandCounts[cmd]
	if !ok {
		nums, _ := pdp.operands()
		Logger().Warn("unknown SVG path command", "command", string(c), "operands", len(nums))
		return
	}
	if n == 0 {
		pdp.closePath()
		return
	}

	nums, err := pdp.operands()
	if err != nil {
		Logger().Warn("malformed path operand", "command", string(c), "error", err)
	}
	if len(nums) == 0 || len(nums)%n != 0 {
		Logger().Warn("path command operand count mismatch",
			"command", string(c), "got", len(nums), "group", n)
	}
	for j := 0; j+n <= len(nums); j += n {
		pdp.endpoint(cmd, rel, nums[j:j+n])
		if cmd == 'M' && j == 0 {
			pdp.startX, pdp.startY = pdp.x, pdp.y
			pdp.started = true
		}
	}
}

// operands reads the numbers following a command letter.
func (pdp *pathDescriptionParser) operands() ([]float64, error) {
	var nums []float64
	for {
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
		if pdp.lex.PeekItem().Type != gl.ItemNumber {
			return nums, nil
		}
		n, err := parseNumber(pdp.lex.NextItem())
		if err != nil {
			return nums, err
		}
		nums = append(nums, n)
	}
}

// endpoint moves the current point to the end of one operand group and
// records it.
func (pdp *pathDescriptionParser) endpoint(cmd rune, rel bool, args []float64) {
	var x, y float64
	switch cmd {
	case 'H':
		x, y = args[0], pdp.y
		if rel {
			x += pdp.x
		}
	case 'V':
		x, y = pdp.x, args[0]
		if rel {
			y += pdp.y
		}
	default:
		x, y = args[len(args)-2], args[len(args)-1]
		if rel {
			x += pdp.x
			y += pdp.y
		}
	}
	pdp.x, pdp.y = x, y
	if !pdp.started {
		pdp.startX, pdp.startY = x, y
		pdp.started = true
	}
	pdp.add(x, y)
}

// closePath returns to the start of the current subpath. Nothing is
// recorded before the first point.
func (pdp *pathDescriptionParser) closePath() {
	if !pdp.started {
		return
	}
	pdp.x, pdp.y = pdp.startX, pdp.startY
	pdp.add(pdp.x, pdp.y)
}

func (pdp *pathDescriptionParser) add(x, y float64) {
	x, y = applyTransform(pdp.transform, x, y)
	pdp.points = append(pdp.points, Tuple{x, y})
}

func parseNumber(i gl.Item) (float64, error) {
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing number %q: %w", i.Value, err)
	}
	return n, nil
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarshalPoints encodes pts as a JSON array of {"x", "y"} objects.
func MarshalPoints(pts []Tuple) ([]byte, error) {
	out := make([]jsonPoint, len(pts))
	for i, p := range pts {
		out[i] = jsonPoint{X: p[0], Y: p[1]}
	}
	return json.Marshal(out)
}

// DecodeJSON reads a JSON string holding a path description and returns
// its end points as a JSON array of {"x", "y"} objects.
func (dec *Decoder) DecodeJSON(data []byte) ([]byte, error) {
	var d string
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("reading path JSON string: %w", err)
	}
	return MarshalPoints(dec.Decode(d))
}

// DecodeJSON is Decoder.DecodeJSON without a transform.
func DecodeJSON(data []byte) ([]byte, error) {
	return (&Decoder{}).DecodeJSON(data)
}
