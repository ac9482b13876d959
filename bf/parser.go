package bf

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Const", Pattern: `[01]`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Eq", Pattern: `=`},
	{Name: "Or", Pattern: `\|`},
	{Name: "And", Pattern: `&`},
	{Name: "Not", Pattern: `[\^~!]`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Semicolon", Pattern: `;`},
})

// The grammar is right-recursive: "a & b & c" is read as "a & (b & c)".

type formulaAST struct {
	Parts []*equivAST `parser:"@@ ( Semicolon @@ )* Semicolon?"`
}

type equivAST struct {
	Left  *impliesAST `parser:"@@"`
	Right *equivAST   `parser:"( Eq @@ )?"`
}

type impliesAST struct {
	Left  *orAST      `parser:"@@"`
	Right *impliesAST `parser:"( Arrow @@ )?"`
}

type orAST struct {
	Left  *andAST `parser:"@@"`
	Right *orAST  `parser:"( Or @@ )?"`
}

type andAST struct {
	Left  *notAST `parser:"@@"`
	Right *andAST `parser:"( And @@ )?"`
}

type notAST struct {
	Negated *notAST  `parser:"  Not @@"`
	Atom    *atomAST `parser:"| @@"`
}

type atomAST struct {
	Const  *string   `parser:"  @Const"`
	Var    *string   `parser:"| @Ident"`
	Unique []string  `parser:"| LBrace @Ident ( Comma @Ident )* RBrace"`
	Sub    *equivAST `parser:"| LParen @@ RParen"`
}

var formulaParser = participle.MustBuild[formulaAST](
	participle.Lexer(formulaLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses the formula from the given input Reader.
// It returns the corresponding Formula.
// Formulas are written using the following operators (from lowest to highest priority) :
//
// - for an equivalence, the "=" operator,
// - for an implication, the "->" operator,
// - for a disjunction ("or"), the "|" operator,
// - for a conjunction ("and"), the "&" operator,
// - for a negation, the "^", "~" or "!" unary operator.
//
// Parentheses can be used to group subformulas. The constants 0 and 1 denote
// False and True, and "{a, b, c}" means exactly one of a, b and c is true.
// Several formulas separated by ";" are read as their conjunction.
func Parse(r io.Reader) (Formula, error) {
	ast, err := formulaParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse formula")
	}
	return ast.formula(), nil
}

// ParseString is like Parse but reads the formula from s.
func ParseString(s string) (Formula, error) {
	ast, err := formulaParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse formula %q", s)
	}
	return ast.formula(), nil
}

func (f *formulaAST) formula() Formula {
	if len(f.Parts) == 1 {
		return f.Parts[0].formula()
	}
	subs := make([]Formula, len(f.Parts))
	for i, p := range f.Parts {
		subs[i] = p.formula()
	}
	return And(subs...)
}

func (e *equivAST) formula() Formula {
	if e.Right == nil {
		return e.Left.formula()
	}
	return Eq(e.Left.formula(), e.Right.formula())
}

func (i *impliesAST) formula() Formula {
	if i.Right == nil {
		return i.Left.formula()
	}
	return Implies(i.Left.formula(), i.Right.formula())
}

func (o *orAST) formula() Formula {
	if o.Right == nil {
		return o.Left.formula()
	}
	return Or(o.Left.formula(), o.Right.formula())
}

func (a *andAST) formula() Formula {
	if a.Right == nil {
		return a.Left.formula()
	}
	return And(a.Left.formula(), a.Right.formula())
}

func (n *notAST) formula() Formula {
	if n.Negated != nil {
		return Not(n.Negated.formula())
	}
	return n.Atom.formula()
}

func (a *atomAST) formula() Formula {
	switch {
	case a.Const != nil && *a.Const == "1":
		return True
	case a.Const != nil:
		return False
	case a.Var != nil:
		return Var(*a.Var)
	case a.Unique != nil:
		return Unique(a.Unique...)
	default:
		return a.Sub.formula()
	}
}
