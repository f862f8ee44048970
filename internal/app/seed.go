package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go-groupware/internal/department"
	"go-groupware/internal/serial"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedFile format file YAML untuk cmd/seed.
//
//	departments:
//	  - Engineering
//	  - Human Resources
type SeedFile struct {
	Departments []string `yaml:"departments"`
}

func LoadSeedFile(path string) (SeedFile, error) {
	var f SeedFile
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return f, nil
}

type SeedResult struct {
	DepartmentsCreated int
	DepartmentsSkipped int
}

// SeedData idempotent: serial "employee" dibuat kalau belum ada, department yang namanya
// sudah terdaftar dilewati.
func SeedData(
	ctx context.Context,
	serials serial.Repository,
	departments department.Repository,
	f SeedFile,
	logger *zap.Logger,
) (SeedResult, error) {
	var res SeedResult
	log := logger.Named("app.seed")

	if err := serials.EnsureRef(ctx, serial.RefEmployee); err != nil {
		return res, fmt.Errorf("ensure serial %q: %w", serial.RefEmployee, err)
	}
	log.Info("serial ready", zap.String("ref", serial.RefEmployee))

	seen := make(map[string]struct{}, len(f.Departments))
	for _, name := range f.Departments {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		_, err := departments.FindByName(ctx, name)
		if err == nil {
			res.DepartmentsSkipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return res, fmt.Errorf("find department %q: %w", name, err)
		}

		dept := &department.Department{Name: name}
		if err := departments.Create(ctx, dept); err != nil {
			return res, fmt.Errorf("create department %q: %w", name, err)
		}
		res.DepartmentsCreated++
		log.Info("department created", zap.Int("id", dept.ID), zap.String("name", name))
	}

	return res, nil
}
