package analyze

// TypeString returns a human-readable string representation of a TypeInfo,
// used in diagnostics.
func TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		if t.ID.Name != "" {
			return t.ID.Name
		}
		return "<unknown>"

	case TypeKindStruct:
		if t.IsNamed() {
			return t.ID.Name
		}
		return "struct{...}"

	case TypeKindPointer:
		if t.ElemType != nil {
			return "*" + TypeString(t.ElemType)
		}
		return "*<unknown>"

	case TypeKindSlice:
		if t.ElemType != nil {
			return "[]" + TypeString(t.ElemType)
		}
		return "[]<unknown>"

	case TypeKindMap:
		if t.IsNamed() {
			return t.ID.Name
		}
		return "map[" + TypeString(t.KeyType) + "]" + TypeString(t.ElemType)

	case TypeKindAlias:
		if t.IsNamed() {
			return t.ID.Name
		}
		return TypeString(t.Underlying)

	case TypeKindExternal:
		if t.IsNamed() {
			return t.ID.String()
		}
		return t.GoType.String()

	default:
		if t.GoType != nil {
			return t.GoType.String()
		}
		return "<unknown>"
	}
}
