// Package lower translates high-level source types into low-level IR
// types.
//
// The mapping is total and deterministic for a fixed target: every source
// type produces exactly one lir.Type, with platform-dependent widths
// (addresses, values, selectors) fixed once per compilation unit by the
// chosen target, never inferred per expression. An unrepresentable source
// type is an internal compiler error, since the input is trusted to be
// well-typed.
package lower

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/fanyi-zhao/solang/internal/ice"
	"github.com/fanyi-zhao/solang/internal/lir"
	"github.com/fanyi-zhao/solang/internal/platform"
	"github.com/fanyi-zhao/solang/internal/sema"
)

// cacheSize bounds the per-unit memoization cache. Source programs repeat
// a small set of types heavily; 512 distinct renderings is far beyond any
// observed unit.
const cacheSize = 512

// Lowerer lowers sema types for one compilation unit and target.
type Lowerer struct {
	target platform.Target
	cache  *lru.Cache[string, lir.Type]
	log    *zap.Logger
}

// Option configures a Lowerer.
type Option func(*Lowerer)

// WithLogger attaches a logger for debug-level lowering traces.
func WithLogger(log *zap.Logger) Option {
	return func(l *Lowerer) {
		l.log = log
	}
}

// New creates a Lowerer for the given target.
func New(target platform.Target, opts ...Option) *Lowerer {
	cache, err := lru.New[string, lir.Type](cacheSize)
	if err != nil {
		// lru.New fails only on a non-positive size.
		panic(err)
	}
	l := &Lowerer{
		target: target,
		cache:  cache,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Target returns the platform parameters this Lowerer was built with.
func (l *Lowerer) Target() platform.Target {
	return l.target
}

// LowerType maps a source type onto its unique IR type. Results are
// memoized by source rendering, which is injective for this model.
func (l *Lowerer) LowerType(ty sema.Type) (lir.Type, error) {
	key := ty.String()
	if cached, ok := l.cache.Get(key); ok {
		return cached, nil
	}

	lowered, err := l.lower(ty)
	if err != nil {
		return nil, err
	}

	l.cache.Add(key, lowered)
	l.log.Debug("lowered type",
		zap.String("source", key),
		zap.String("lir", lowered.String()),
		zap.String("target", l.target.Name))
	return lowered, nil
}

// vectorOfBytes is the lowered shape shared by strings and dynamic byte
// arrays: both are length-prefixed byte buffers behind a pointer, with
// identical layout and permitted operations, so the IR does not
// distinguish them.
func vectorOfBytes() lir.Type {
	return lir.Ptr{To: lir.Struct{Tag: lir.Vector{Elem: lir.Bytes{Width: 1}}}}
}

func (l *Lowerer) lower(ty sema.Type) (lir.Type, error) {
	switch t := ty.(type) {
	case sema.Bool:
		return lir.Bool{}, nil

	case sema.Int:
		return lir.Int{Width: t.Width}, nil

	case sema.Uint:
		return lir.Uint{Width: t.Width}, nil

	case sema.Bytes:
		return lir.Bytes{Width: t.Width}, nil

	case sema.Address:
		return lir.Bytes{Width: uint8(l.target.AddressLength)}, nil

	case sema.Contract:
		// a contract reference is the address of its account
		return lir.Bytes{Width: uint8(l.target.AddressLength)}, nil

	case sema.Value:
		return lir.Uint{Width: uint16(l.target.ValueLength * 8)}, nil

	case sema.FunctionSelector:
		return lir.Uint{Width: uint16(l.target.SelectorLength * 8)}, nil

	case sema.String, sema.DynamicBytes:
		return vectorOfBytes(), nil

	case sema.Enum:
		// enums are represented by their uint8 discriminant
		return lir.Uint{Width: 8}, nil

	case sema.Array:
		elem, err := l.LowerType(t.Elem)
		if err != nil {
			return nil, err
		}
		return lir.Ptr{To: lir.Array{Elem: elem, Dims: lowerDims(t.Dims)}}, nil

	case sema.Struct:
		return lir.Ptr{To: lir.Struct{Tag: lowerStructTag(t.Tag)}}, nil

	case sema.Mapping:
		key, err := l.LowerType(t.Key)
		if err != nil {
			return nil, err
		}
		value, err := l.LowerType(t.Value)
		if err != nil {
			return nil, err
		}
		return lir.Mapping{Key: key, Value: value}, nil

	case sema.Ref:
		to, err := l.LowerType(t.To)
		if err != nil {
			return nil, err
		}
		return lir.Ptr{To: to}, nil

	case sema.StorageRef:
		to, err := l.LowerType(t.To)
		if err != nil {
			return nil, err
		}
		return lir.StoragePtr{Immutable: t.Immutable, To: to}, nil

	case sema.InternalFunction:
		fn, err := l.lowerSignature(t.Params, t.Returns)
		if err != nil {
			return nil, err
		}
		return lir.Ptr{To: fn}, nil

	case sema.ExternalFunction:
		// address plus selector, boxed in the reserved layout
		return lir.Ptr{To: lir.Struct{Tag: lir.ExternalFunctionStruct{}}}, nil

	case sema.Slice:
		elem, err := l.LowerType(t.Elem)
		if err != nil {
			return nil, err
		}
		return lir.Ptr{To: lir.Slice{Elem: elem}}, nil

	case sema.BufferPointer:
		return lir.Ptr{To: lir.Uint{Width: 8}}, nil

	default:
		return nil, ice.Errorf("unrepresentable source type %s during lowering", ty)
	}
}

func (l *Lowerer) lowerSignature(params, returns []sema.Type) (lir.Function, error) {
	fn := lir.Function{
		Params:  make([]lir.Type, 0, len(params)),
		Returns: make([]lir.Type, 0, len(returns)),
	}
	for _, p := range params {
		lowered, err := l.LowerType(p)
		if err != nil {
			return lir.Function{}, err
		}
		fn.Params = append(fn.Params, lowered)
	}
	for _, r := range returns {
		lowered, err := l.LowerType(r)
		if err != nil {
			return lir.Function{}, err
		}
		fn.Returns = append(fn.Returns, lowered)
	}
	return fn, nil
}

func lowerDims(dims []sema.ArrayLength) []lir.ArrayLength {
	lowered := make([]lir.ArrayLength, len(dims))
	for i, dim := range dims {
		switch d := dim.(type) {
		case sema.Fixed:
			lowered[i] = lir.FixedDim{N: d.N}
		case sema.Dynamic:
			lowered[i] = lir.DynamicDim{}
		case sema.AnyFixed:
			lowered[i] = lir.AnyFixedDim{}
		}
	}
	return lowered
}

func lowerStructTag(tag sema.StructTag) lir.StructTag {
	switch t := tag.(type) {
	case sema.UserDefined:
		return lir.UserStruct{No: t.No}
	case sema.AccountInfo:
		return lir.SolAccountInfo{}
	case sema.AccountMeta:
		return lir.SolAccountMeta{}
	case sema.Parameters:
		return lir.SolParameters{}
	default:
		return lir.ExternalFunctionStruct{}
	}
}
