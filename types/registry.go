package types

// Registry interns all the types of one compilation context.  Repeated
// requests with structurally equal arguments return the same Type instance,
// which is what makes identity comparison of types correct.  A Registry must
// never be shared between compilation contexts: identity comparison is only
// meaningful among types interned by the same Registry.
type Registry struct {
	intType    *PrimType
	boolType   *PrimType
	floatType  *PrimType
	stringType *PrimType
	unitType   *PrimType

	// All function types interned so far.  Function types are few enough per
	// context that a linear structural scan is fine; the scan itself compares
	// element types by identity since they are already interned.
	funcTypes []*FuncType
}

// NewRegistry creates a new type registry with fresh primitive instances.
func NewRegistry() *Registry {
	return &Registry{
		intType:    &PrimType{Kind: PrimInt},
		boolType:   &PrimType{Kind: PrimBool},
		floatType:  &PrimType{Kind: PrimFloat},
		stringType: &PrimType{Kind: PrimString},
		unitType:   &PrimType{Kind: PrimUnit},
	}
}

// GetInt returns the canonical `int` type.
func (r *Registry) GetInt() Type {
	return r.intType
}

// GetBool returns the canonical `bool` type.
func (r *Registry) GetBool() Type {
	return r.boolType
}

// GetFloat returns the canonical `float` type.
func (r *Registry) GetFloat() Type {
	return r.floatType
}

// GetString returns the canonical `string` type.
func (r *Registry) GetString() Type {
	return r.stringType
}

// GetUnit returns the canonical `unit` type: the type of statements and of
// functions which return no value.
func (r *Registry) GetUnit() Type {
	return r.unitType
}

// GetFunc returns the canonical function type with the given parameter types
// and return type.  The argument types must themselves be interned by this
// registry.  The passed parameter slice is copied, not retained.
func (r *Registry) GetFunc(paramTypes []Type, returnType Type) *FuncType {
	for _, ft := range r.funcTypes {
		if ft.ReturnType != returnType || len(ft.ParamTypes) != len(paramTypes) {
			continue
		}

		matched := true
		for i, param := range ft.ParamTypes {
			if param != paramTypes[i] {
				matched = false
				break
			}
		}

		if matched {
			return ft
		}
	}

	ft := &FuncType{
		ParamTypes: append([]Type(nil), paramTypes...),
		ReturnType: returnType,
	}
	r.funcTypes = append(r.funcTypes, ft)
	return ft
}
