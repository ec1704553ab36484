package model

// Familia identifies one configurable name→price catalog file.
type Familia string

const (
	FamiliaGuisos    Familia = "guisos"
	FamiliaAguas     Familia = "aguas"
	FamiliaRefrescos Familia = "refrescos"
	FamiliaPostres   Familia = "postres"
)

// Familias lists every known catalog family, in display order.
func Familias() []Familia {
	return []Familia{FamiliaGuisos, FamiliaAguas, FamiliaRefrescos, FamiliaPostres}
}

// Valida reports whether f names a known catalog family.
func (f Familia) Valida() bool {
	switch f {
	case FamiliaGuisos, FamiliaAguas, FamiliaRefrescos, FamiliaPostres:
		return true
	}
	return false
}
