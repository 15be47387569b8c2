package risk

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Trazabilidad-api/internal/domain"
)

// ManualInput agregados enviados por el cliente (sin consultar la base de datos).
type ManualInput struct {
	TotalSeconds float64
	ReworkCount  int
	ScrapCount   int
	StationName  string
	PartType     string
}

// ScoreManual aplica la misma tabla de reglas a agregados del cliente y suma
// el bono de inspección final según el nombre de la estación actual.
// Valores negativos devuelven domain.ErrInvalidInput sin calcular nada.
func (e *Engine) ScoreManual(in ManualInput) (Assessment, error) {
	if in.TotalSeconds < 0 || math.IsNaN(in.TotalSeconds) || math.IsInf(in.TotalSeconds, 0) {
		return Assessment{}, fmt.Errorf("%w: el tiempo total no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.ReworkCount < 0 {
		return Assessment{}, fmt.Errorf("%w: el número de retrabajos no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.ScrapCount < 0 {
		return Assessment{}, fmt.Errorf("%w: el número de scraps no puede ser negativo", domain.ErrInvalidInput)
	}

	total := decimal.NewFromFloat(in.TotalSeconds)
	score, reasons := e.apply(total, in.ScrapCount, in.ReworkCount)

	if e.atFinalInspection(in.StationName) {
		score = score.Add(e.rules.InspectionWeight)
		reasons = append(reasons, e.rules.InspectionReason)
	}

	return e.finish(score, reasons, Details{
		TotalSeconds: in.TotalSeconds,
		TotalMinutes: total.Div(sixty).Round(2).InexactFloat64(),
		ScrapCount:   in.ScrapCount,
		ReworkCount:  in.ReworkCount,
	}), nil
}

func (e *Engine) atFinalInspection(station string) bool {
	prefix := foldName(e.rules.InspectionPrefix)
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(foldName(station), prefix)
}

// foldName normaliza un nombre de estación: sin acentos, mayúsculas, sin espacios extremos.
// "Inspección final" -> "INSPECCION FINAL".
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.TrimSpace(out))
}
