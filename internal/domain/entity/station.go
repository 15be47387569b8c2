package entity

// Station representa una estación de la línea (ensamble, prueba, inspección, etc.).
type Station struct {
	ID   string
	Name string // único
	Type string
	Line string
}
