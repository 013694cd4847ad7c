package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned when resolving or parsing transform operations.
var (
	ErrUnknownKind       = errors.New("transform: unknown operation kind")
	ErrUnknownReflection = errors.New("transform: unknown reflection")
	ErrSyntax            = errors.New("transform: syntax error")
)

// Kind identifies a 2D transform operation.
type Kind uint8

// Operation kinds.
const (
	KindIdentity Kind = iota
	KindTranslate
	KindRotate
	KindScale
	KindReflect
	KindShear
)

var kindNames = [...]string{
	KindIdentity:  "identity",
	KindTranslate: "translate",
	KindRotate:    "rotate",
	KindScale:     "scale",
	KindReflect:   "reflect",
	KindShear:     "shear",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the Kind with the given name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseReflection returns the Reflection with the given name.
// Accepted names are those produced by Reflection.String.
func ParseReflection(s string) (Reflection, error) {
	name := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	for r := ReflectX; r <= ReflectAntiDiagonal; r++ {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReflection, s)
}

// Op is a single 2D transform operation.
//
// The meaning of X and Y depends on Kind:
//
//	KindTranslate  X, Y = tx, ty
//	KindRotate     X = angle in degrees, counter-clockwise
//	KindScale      X, Y = sx, sy
//	KindShear      X, Y = shx, shy
//	KindReflect    Reflection selects the axis; X and Y are unused
type Op struct {
	Kind       Kind
	X, Y       float64
	Reflection Reflection
}

// Translate returns a translation Op.
func Translate(tx, ty float64) Op { return Op{Kind: KindTranslate, X: tx, Y: ty} }

// Rotate returns a rotation Op (degrees).
func Rotate(degrees float64) Op { return Op{Kind: KindRotate, X: degrees} }

// Scale returns a scaling Op.
func Scale(sx, sy float64) Op { return Op{Kind: KindScale, X: sx, Y: sy} }

// Reflect returns a reflection Op.
func Reflect(r Reflection) Op { return Op{Kind: KindReflect, Reflection: r} }

// ShearOp returns a shear Op.
func ShearOp(shx, shy float64) Op { return Op{Kind: KindShear, X: shx, Y: shy} }

// Matrix resolves the operation to its matrix.
func (o Op) Matrix() (Matrix3, error) {
	switch o.Kind {
	case KindIdentity:
		return Identity3(), nil
	case KindTranslate:
		return Translate2D(o.X, o.Y), nil
	case KindRotate:
		return Rotate2D(o.X), nil
	case KindScale:
		return Scale2D(o.X, o.Y), nil
	case KindReflect:
		if !o.Reflection.Valid() {
			return Matrix3{}, fmt.Errorf("%w: %v", ErrUnknownReflection, o.Reflection)
		}
		return Reflect2D(o.Reflection), nil
	case KindShear:
		return Shear2D(o.X, o.Y), nil
	default:
		return Matrix3{}, fmt.Errorf("%w: %v", ErrUnknownKind, o.Kind)
	}
}

// String formats the operation in the syntax accepted by ParseOp.
func (o Op) String() string {
	switch o.Kind {
	case KindIdentity:
		return o.Kind.String()
	case KindRotate:
		return fmt.Sprintf("%v:%g", o.Kind, o.X)
	case KindReflect:
		return fmt.Sprintf("%v:%v", o.Kind, o.Reflection)
	default:
		return fmt.Sprintf("%v:%g,%g", o.Kind, o.X, o.Y)
	}
}

// Chain resolves each operation and accumulates result = result·op from
// left to right, starting at the identity. The last operation in the list
// is therefore the first one applied to a point.
func Chain(ops ...Op) (Matrix3, error) {
	result := Identity3()
	for i, op := range ops {
		m, err := op.Matrix()
		if err != nil {
			return Matrix3{}, fmt.Errorf("op %d: %w", i, err)
		}
		result = result.Mul(m)
	}
	return result, nil
}

// ParseOp parses a single operation of the form "kind" or "kind:args".
//
//	identity
//	translate:10,20
//	rotate:45
//	scale:2,3     (scale:2 scales both axes)
//	reflect:y=x
//	shear:0.5,0
func ParseOp(s string) (Op, error) {
	name, args, hasArgs := strings.Cut(strings.TrimSpace(s), ":")
	kind, err := ParseKind(name)
	if err != nil {
		return Op{}, err
	}
	op := Op{Kind: kind}

	switch kind {
	case KindIdentity:
		if hasArgs && strings.TrimSpace(args) != "" {
			return Op{}, fmt.Errorf("%w: identity takes no arguments: %q", ErrSyntax, s)
		}
	case KindReflect:
		op.Reflection, err = ParseReflection(args)
		if err != nil {
			return Op{}, err
		}
	case KindRotate:
		v, err := parseFloats(args, 1)
		if err != nil {
			return Op{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		op.X = v[0]
	case KindScale:
		v, err := parseFloats(args, 1, 2)
		if err != nil {
			return Op{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		op.X, op.Y = v[0], v[len(v)-1]
	default:
		v, err := parseFloats(args, 2)
		if err != nil {
			return Op{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		op.X, op.Y = v[0], v[1]
	}
	return op, nil
}

// ParseChain parses a ";"-separated list of operations.
// Empty elements are skipped, so an empty string is an empty chain.
func ParseChain(s string) ([]Op, error) {
	var ops []Op
	for part := range strings.SplitSeq(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		op, err := ParseOp(part)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// parseFloats parses a comma-separated list whose length is one of counts.
func parseFloats(s string, counts ...int) ([]float64, error) {
	fields := strings.Split(s, ",")
	ok := false
	for _, n := range counts {
		if len(fields) == n {
			ok = true
			break
		}
	}
	if !ok {
		return nil, fmt.Errorf("want %v values, got %d", counts, len(fields))
	}
	v := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		v[i] = x
	}
	return v, nil
}
