package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jirabridge/internal/shared/logger"
)

// Generator handles creation of new migration files
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGenerator creates a new migration generator
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration creates a new migration file pair (up and down)
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	timestamp := time.Now().Format("20060102150405")

	upFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	header := fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n", name, time.Now().Format(time.RFC3339))

	if err := os.WriteFile(upFilePath, []byte(header), 0644); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(downFilePath, []byte(header), 0644); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}
