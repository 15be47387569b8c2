package risk

import (
	"context"
	"fmt"

	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/risk"
	"github.com/jhoicas/Trazabilidad-api/pkg/logger"
)

// Orígenes de una evaluación, usados como etiqueta de métricas.
const (
	SourcePart   = "part"
	SourceManual = "manual"
)

// Observer recibe cada resultado del motor (métricas). Opcional.
type Observer interface {
	ObserveAssessment(source, level string, score float64)
	ObserveAnomalies(n int)
}

// Service expone el motor de riesgo sobre el Event Store: lee los eventos y delega el cálculo.
// No escribe nada; cada llamada trabaja sobre la lectura que hizo.
type Service struct {
	engine    *risk.Engine
	partRepo  repository.PartRepository
	eventRepo repository.ProcessEventRepository
	log       *logger.Logger
	obs       Observer
}

// NewService construye el servicio. log y obs pueden ser nil.
func NewService(
	engine *risk.Engine,
	partRepo repository.PartRepository,
	eventRepo repository.ProcessEventRepository,
	log *logger.Logger,
	obs Observer,
) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{engine: engine, partRepo: partRepo, eventRepo: eventRepo, log: log, obs: obs}
}

// Rules devuelve el juego de reglas activo.
func (s *Service) Rules() risk.RuleSet {
	return s.engine.Rules()
}

// ScorePart evalúa una pieza almacenada. Pieza inexistente -> domain.ErrNotFound;
// pieza sin eventos -> LOW con "no events recorded".
func (s *Service) ScorePart(ctx context.Context, partID string) (*risk.Assessment, error) {
	part, err := s.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, fmt.Errorf("%w: pieza %s", domain.ErrNotFound, partID)
	}
	events, err := s.eventRepo.ListByPart(ctx, partID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	a := s.engine.Score(events)
	s.log.Debug().
		Str("part_id", partID).
		Float64("score", a.Score).
		Str("level", string(a.Level)).
		Strs("reasons", a.Reasons).
		Msg("riesgo de pieza evaluado")
	s.observe(SourcePart, a)
	return &a, nil
}

// ScoreManual evalúa agregados enviados por el cliente. Entrada negativa -> domain.ErrInvalidInput.
func (s *Service) ScoreManual(in risk.ManualInput) (risk.Assessment, error) {
	a, err := s.engine.ScoreManual(in)
	if err != nil {
		return risk.Assessment{}, err
	}
	s.log.Debug().
		Float64("total_seconds", in.TotalSeconds).
		Str("station", in.StationName).
		Float64("score", a.Score).
		Str("level", string(a.Level)).
		Msg("riesgo manual evaluado")
	s.observe(SourceManual, a)
	return a, nil
}

// FindAnomalies recorre todo el Event Store y marca piezas con tiempo total fuera de rango.
func (s *Service) FindAnomalies(ctx context.Context) (risk.AnomalyReport, error) {
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return risk.AnomalyReport{}, fmt.Errorf("list events: %w", err)
	}
	report := s.engine.FindAnomalies(events)
	s.log.Debug().
		Int("events", len(events)).
		Float64("mean_seconds", report.MeanSeconds).
		Int("anomalies", len(report.Parts)).
		Msg("anomalías calculadas")
	if s.obs != nil {
		s.obs.ObserveAnomalies(len(report.Parts))
	}
	return report, nil
}

func (s *Service) observe(source string, a risk.Assessment) {
	if s.obs != nil {
		s.obs.ObserveAssessment(source, string(a.Level), a.Score)
	}
}
