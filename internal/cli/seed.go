package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Trazabilidad-api/pkg/config"
)

var seedOpts struct {
	adminEmail    string
	adminPassword string
	stationsFile  string
	latin1        bool
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Crea el usuario ADMIN inicial y las estaciones de un CSV (nombre,tipo,línea)",
	Example: `  tracectl seed --admin-email admin@planta.co --admin-password s3creto
  tracectl seed --stations estaciones.csv --latin1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var stations []dto.CreateStationRequest
		if seedOpts.stationsFile != "" {
			f, err := os.Open(seedOpts.stationsFile)
			if err != nil {
				return fmt.Errorf("abrir CSV: %w", err)
			}
			defer f.Close()
			if stations, err = readStations(f, seedOpts.latin1); err != nil {
				return err
			}
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()
		out := cmd.OutOrStdout()

		if seedOpts.adminEmail != "" {
			users := usecase.NewUserUseCase(postgres.NewUserRepository(pool))
			_, err := users.Create(ctx, dto.CreateUserRequest{
				Name:     "Administrador",
				Email:    seedOpts.adminEmail,
				Password: seedOpts.adminPassword,
				Role:     entity.RoleAdmin,
			})
			switch {
			case errors.Is(err, domain.ErrEmailAlreadyExists):
				fmt.Fprintf(out, "usuario %s ya existe\n", seedOpts.adminEmail)
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "usuario ADMIN %s creado\n", seedOpts.adminEmail)
			}
		}

		stationUC := usecase.NewStationUseCase(postgres.NewStationRepository(pool))
		created := 0
		for _, s := range stations {
			if _, err := stationUC.Create(ctx, s); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					continue
				}
				return fmt.Errorf("estación %s: %w", s.Name, err)
			}
			created++
		}
		fmt.Fprintf(out, "%d estaciones creadas (%d en el archivo)\n", created, len(stations))
		return nil
	},
}

func init() {
	f := seedCmd.Flags()
	f.StringVar(&seedOpts.adminEmail, "admin-email", "", "email del ADMIN inicial")
	f.StringVar(&seedOpts.adminPassword, "admin-password", "", "contraseña del ADMIN inicial")
	f.StringVar(&seedOpts.stationsFile, "stations", "", "CSV de estaciones: nombre,tipo,línea")
	f.BoolVar(&seedOpts.latin1, "latin1", false, "el CSV está en ISO-8859-1")
	rootCmd.AddCommand(seedCmd)
}

// readStations lee el CSV de estaciones. Ignora filas vacías y una cabecera "nombre"/"name".
func readStations(r io.Reader, latin1 bool) ([]dto.CreateStationRequest, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []dto.CreateStationRequest
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV línea %d: %w", line, err)
		}
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		name := strings.TrimSpace(rec[0])
		if line == 1 && (strings.EqualFold(name, "nombre") || strings.EqualFold(name, "name")) {
			continue
		}
		if len(rec) < 2 || strings.TrimSpace(rec[1]) == "" {
			return nil, fmt.Errorf("CSV línea %d: falta el tipo de estación", line)
		}
		s := dto.CreateStationRequest{Name: name, Type: strings.TrimSpace(rec[1])}
		if len(rec) > 2 {
			s.Line = strings.TrimSpace(rec[2])
		}
		out = append(out, s)
	}
	return out, nil
}
