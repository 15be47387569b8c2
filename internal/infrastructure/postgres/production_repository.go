package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo consultas de solo lectura para métricas de producción.
type ProductionRepo struct {
	pool *pgxpool.Pool
}

// NewProductionRepository construye el adaptador de métricas.
func NewProductionRepository(pool *pgxpool.Pool) *ProductionRepo {
	return &ProductionRepo{pool: pool}
}

// CountPartsByStatus cuenta piezas agrupadas por estado.
func (r *ProductionRepo) CountPartsByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM parts GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("production.CountPartsByStatus: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("production.CountPartsByStatus scan: %w", err)
		}
		out[status] = n
	}
	return out, rows.Err()
}

// Throughput cuenta eventos OK cerrados por día de salida en [from, to].
// Los días sin producción no aparecen.
func (r *ProductionRepo) Throughput(ctx context.Context, from, to time.Time) ([]repository.DailyThroughput, error) {
	const query = `
	SELECT date_trunc('day', exit_time) AS day, COUNT(*) AS parts
	FROM process_events
	WHERE outcome = 'OK'
	  AND exit_time IS NOT NULL
	  AND exit_time >= $1
	  AND exit_time <  $2
	GROUP BY day
	ORDER BY day ASC`

	rows, err := r.pool.Query(ctx, query, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("production.Throughput: %w", err)
	}
	defer rows.Close()

	var results []repository.DailyThroughput
	for rows.Next() {
		var row repository.DailyThroughput
		if err := rows.Scan(&row.Day, &row.Parts); err != nil {
			return nil, fmt.Errorf("production.Throughput scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StationCycleTimes promedio de segundos por evento cerrado en cada estación.
func (r *ProductionRepo) StationCycleTimes(ctx context.Context) ([]repository.StationCycleTime, error) {
	const query = `
	SELECT
	    s.id,
	    s.name,
	    COALESCE(AVG(EXTRACT(EPOCH FROM (e.exit_time - e.entry_time))), 0)::NUMERIC(14,2) AS avg_seconds,
	    COUNT(e.id)                                                                      AS events
	FROM stations s
	LEFT JOIN process_events e ON e.station_id = s.id AND e.exit_time IS NOT NULL
	GROUP BY s.id, s.name
	ORDER BY s.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("production.StationCycleTimes: %w", err)
	}
	defer rows.Close()

	var results []repository.StationCycleTime
	for rows.Next() {
		var row repository.StationCycleTime
		if err := rows.Scan(&row.StationID, &row.StationName, &row.AvgSeconds, &row.Events); err != nil {
			return nil, fmt.Errorf("production.StationCycleTimes scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ScrapByPartType total de piezas y piezas en SCRAP por tipo.
func (r *ProductionRepo) ScrapByPartType(ctx context.Context) ([]repository.PartTypeScrap, error) {
	const query = `
	SELECT
	    part_type,
	    COUNT(*)                                      AS total,
	    COUNT(*) FILTER (WHERE status = 'SCRAP')      AS scrap
	FROM parts
	GROUP BY part_type
	ORDER BY part_type ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("production.ScrapByPartType: %w", err)
	}
	defer rows.Close()

	var results []repository.PartTypeScrap
	for rows.Next() {
		var row repository.PartTypeScrap
		if err := rows.Scan(&row.PartType, &row.Total, &row.Scrap); err != nil {
			return nil, fmt.Errorf("production.ScrapByPartType scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
