package db

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Services []models.Service `yaml:"services"`
}

// LoadCatalog lê o catálogo de serviços do arquivo informado ou o padrão embutido.
func LoadCatalog(path string) ([]models.Service, error) {
	data := defaultCatalog
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read services file: %w", err)
		}
		data = raw
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse services file: %w", err)
	}

	seen := make(map[string]bool, len(file.Services))
	for i := range file.Services {
		s := &file.Services[i]
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			return nil, errors.New("service without name")
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return nil, fmt.Errorf("duplicate service %q", s.Name)
		}
		seen[key] = true
		s.Active = true
	}

	return file.Services, nil
}

// SeedServices insere os serviços que ainda não existem. Serviços já
// cadastrados (mesmo nome) não são alterados.
func SeedServices(db *gorm.DB, services []models.Service) error {
	if len(services) == 0 {
		return nil
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&services).Error
}
